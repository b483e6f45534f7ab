package languages

import (
	"context"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-cms-editor/internal/storage"
)

// BunLanguageRepository stores languages through go-repository-bun.
// Single record lookups go through the cache; queries that filter or order
// always hit the database.
type BunLanguageRepository struct {
	base repository.Repository[*Language]
	repo repository.Repository[*Language]
}

func NewLanguageRepository(db *bun.DB) repository.Repository[*Language] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Language]{
		NewRecord: func() *Language { return &Language{} },
		GetID: func(l *Language) uuid.UUID {
			return l.ID
		},
		SetID: func(l *Language, id uuid.UUID) {
			l.ID = id
		},
		GetIdentifier: func() string {
			return "code"
		},
		GetIdentifierValue: func(l *Language) string {
			return l.Code
		},
	})
}

func NewBunLanguageRepository(db *bun.DB) *BunLanguageRepository {
	return NewBunLanguageRepositoryWithCache(db, nil, nil)
}

// NewBunLanguageRepositoryWithCache constructs the repository with optional caching.
func NewBunLanguageRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunLanguageRepository {
	base := NewLanguageRepository(db)
	return &BunLanguageRepository{
		base: base,
		repo: storage.WrapWithCache(base, cacheService, keySerializer),
	}
}

func (r *BunLanguageRepository) Create(ctx context.Context, record *Language) (*Language, error) {
	if existing, err := r.base.GetByIdentifier(ctx, record.Code); err == nil && existing != nil {
		return nil, ErrCodeExists
	}
	return r.base.Create(ctx, record)
}

func (r *BunLanguageRepository) GetByID(ctx context.Context, id uuid.UUID) (*Language, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, id.String())
	}
	return result, nil
}

func (r *BunLanguageRepository) GetByCode(ctx context.Context, code string) (*Language, error) {
	key := strings.ToLower(strings.TrimSpace(code))
	result, err := r.repo.GetByIdentifier(ctx, key)
	if err != nil {
		return nil, mapRepositoryError(err, key)
	}
	return result, nil
}

func (r *BunLanguageRepository) GetDefault(ctx context.Context) (*Language, error) {
	records, _, err := r.base.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.is_default = ?", true)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "default")
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Key: "default"}
	}
	return records[0], nil
}

func (r *BunLanguageRepository) List(ctx context.Context) ([]*Language, error) {
	records, _, err := r.base.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.code ASC")
		}),
		storage.SelectAll(),
	)
	return records, err
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Key: key}
	}
	return fmt.Errorf("language repository error: %w", err)
}

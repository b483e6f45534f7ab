package pages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-cms-editor/internal/storage"
)

const pageNamespace = "page"

// BunPageRepository stores the page tree through go-repository-bun. Tree
// reshaping runs in a transaction and drops cached pages afterwards.
type BunPageRepository struct {
	db           *bun.DB
	base         repository.Repository[*Page]
	repo         repository.Repository[*Page]
	cacheService cache.CacheService
	cachePrefix  string
}

func NewPageRepository(db *bun.DB) repository.Repository[*Page] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Page]{
		NewRecord: func() *Page { return &Page{} },
		GetID: func(p *Page) uuid.UUID {
			return p.ID
		},
		SetID: func(p *Page, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "urlname"
		},
		GetIdentifierValue: func(p *Page) string {
			return p.Urlname
		},
	})
}

func NewBunPageRepository(db *bun.DB) *BunPageRepository {
	return NewBunPageRepositoryWithCache(db, nil, nil)
}

// NewBunPageRepositoryWithCache constructs the repository with optional caching.
func NewBunPageRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunPageRepository {
	base := NewPageRepository(db)
	wrapped := storage.WrapWithCache(base, cacheService, keySerializer)
	prefix := ""
	if cacheService != nil && keySerializer != nil {
		prefix = storage.CachePrefix(pageNamespace)
	} else {
		cacheService = nil
	}
	return &BunPageRepository{
		db:           db,
		base:         base,
		repo:         wrapped,
		cacheService: cacheService,
		cachePrefix:  prefix,
	}
}

func (r *BunPageRepository) Append(ctx context.Context, record *Page) (*Page, error) {
	copied := *record
	copied.Depth = 0

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*Page)(nil)).
			Where("language_id = ?", record.LanguageID).
			Where("urlname = ?", record.Urlname).
			Exists(ctx)
		if err != nil {
			return err
		}
		if exists {
			return ErrUrlnameExists
		}

		var lft int
		if record.ParentID != nil {
			parent := new(Page)
			if err := tx.NewSelect().Model(parent).Where("id = ?", *record.ParentID).Scan(ctx); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return &NotFoundError{Key: record.ParentID.String()}
				}
				return err
			}
			if parent.LanguageID != record.LanguageID {
				return ErrParentLanguageMismatch
			}
			lft = parent.Rgt
			copied.Depth = parent.Depth + 1
		} else {
			var maxRgt sql.NullInt64
			if err := tx.NewSelect().
				Model((*Page)(nil)).
				ColumnExpr("MAX(rgt)").
				Where("language_id = ?", record.LanguageID).
				Scan(ctx, &maxRgt); err != nil {
				return err
			}
			lft = int(maxRgt.Int64) + 1
		}

		if _, err := tx.NewUpdate().Table("pages").
			Set("lft = lft + 2").
			Where("language_id = ?", record.LanguageID).
			Where("lft >= ?", lft).
			Exec(ctx); err != nil {
			return fmt.Errorf("shift lft: %w", err)
		}
		if _, err := tx.NewUpdate().Table("pages").
			Set("rgt = rgt + 2").
			Where("language_id = ?", record.LanguageID).
			Where("rgt >= ?", lft).
			Exec(ctx); err != nil {
			return fmt.Errorf("shift rgt: %w", err)
		}

		copied.Lft = lft
		copied.Rgt = lft + 1
		_, err = tx.NewInsert().Model(&copied).Exec(ctx)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrUrlnameExists) || errors.Is(err, ErrParentLanguageMismatch) || IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("page repository error: %w", err)
	}
	if err := storage.Invalidate(ctx, r.cacheService, r.cachePrefix); err != nil {
		return nil, fmt.Errorf("page repository cache: %w", err)
	}
	return &copied, nil
}

func (r *BunPageRepository) GetByID(ctx context.Context, id uuid.UUID) (*Page, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, id.String())
	}
	return result, nil
}

func (r *BunPageRepository) GetByUrlname(ctx context.Context, languageID uuid.UUID, urlname string) (*Page, error) {
	records, _, err := r.base.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.language_id = ?", languageID).
				Where("?TableAlias.urlname = ?", urlname)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, urlname)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Key: urlname}
	}
	return records[0], nil
}

func (r *BunPageRepository) ListByLanguage(ctx context.Context, languageID uuid.UUID) ([]*Page, error) {
	records, _, err := r.base.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.language_id = ?", languageID).
				OrderExpr("?TableAlias.lft ASC")
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
	return fmt.Errorf("page repository error: %w", err)
}

package pictures

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-cms-editor/internal/storage"
)

type BunPictureRepository struct {
	base repository.Repository[*Picture]
	repo repository.Repository[*Picture]
}

func NewPictureRepository(db *bun.DB) repository.Repository[*Picture] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Picture]{
		NewRecord: func() *Picture { return &Picture{} },
		GetID: func(p *Picture) uuid.UUID {
			return p.ID
		},
		SetID: func(p *Picture, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "image_file_name"
		},
		GetIdentifierValue: func(p *Picture) string {
			return p.ImageFileName
		},
	})
}

func NewBunPictureRepository(db *bun.DB) *BunPictureRepository {
	return NewBunPictureRepositoryWithCache(db, nil, nil)
}

func NewBunPictureRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunPictureRepository {
	base := NewPictureRepository(db)
	return &BunPictureRepository{
		base: base,
		repo: storage.WrapWithCache(base, cacheService, keySerializer),
	}
}

func (r *BunPictureRepository) Create(ctx context.Context, record *Picture) (*Picture, error) {
	return r.base.Create(ctx, record)
}

func (r *BunPictureRepository) GetByID(ctx context.Context, id uuid.UUID) (*Picture, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, id.String())
	}
	return result, nil
}

func (r *BunPictureRepository) List(ctx context.Context) ([]*Picture, error) {
	records, _, err := r.base.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.created_at ASC").OrderExpr("?TableAlias.name ASC")
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
	return fmt.Errorf("picture repository error: %w", err)
}

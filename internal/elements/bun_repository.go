package elements

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

// BunElementRepository stores elements and contents through
// go-repository-bun. Element lookups may be cached; contents change on every
// essence update and are always read from the database.
type BunElementRepository struct {
	db       *bun.DB
	elements repository.Repository[*Element]
	cached   repository.Repository[*Element]
	contents repository.Repository[*Content]
}

func NewElementRepository(db *bun.DB) repository.Repository[*Element] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Element]{
		NewRecord: func() *Element { return &Element{} },
		GetID: func(e *Element) uuid.UUID {
			return e.ID
		},
		SetID: func(e *Element, id uuid.UUID) {
			e.ID = id
		},
		GetIdentifier: func() string {
			return "name"
		},
		GetIdentifierValue: func(e *Element) string {
			return e.Name
		},
	})
}

func NewContentRepository(db *bun.DB) repository.Repository[*Content] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Content]{
		NewRecord: func() *Content { return &Content{} },
		GetID: func(c *Content) uuid.UUID {
			return c.ID
		},
		SetID: func(c *Content, id uuid.UUID) {
			c.ID = id
		},
		GetIdentifier: func() string {
			return "name"
		},
		GetIdentifierValue: func(c *Content) string {
			return c.Name
		},
	})
}

func NewBunElementRepository(db *bun.DB) *BunElementRepository {
	return NewBunElementRepositoryWithCache(db, nil, nil)
}

func NewBunElementRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunElementRepository {
	base := NewElementRepository(db)
	return &BunElementRepository{
		db:       db,
		elements: base,
		cached:   storage.WrapWithCache(base, cacheService, keySerializer),
		contents: NewContentRepository(db),
	}
}

func (r *BunElementRepository) Create(ctx context.Context, element *Element) (*Element, error) {
	stored := *element
	stored.Contents = nil
	staged := make([]*Content, 0, len(element.Contents))
	for _, content := range element.Contents {
		copied := *content
		copied.ElementID = stored.ID
		if err := copied.encode(); err != nil {
			return nil, err
		}
		staged = append(staged, &copied)
	}

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&stored).Exec(ctx); err != nil {
			return fmt.Errorf("insert element: %w", err)
		}
		if len(staged) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&staged).Exec(ctx); err != nil {
			return fmt.Errorf("insert contents: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("element repository error: %w", err)
	}
	return r.withContents(ctx, &stored)
}

func (r *BunElementRepository) GetByID(ctx context.Context, id uuid.UUID) (*Element, error) {
	record, err := r.cached.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "element", id.String())
	}
	copied := *record
	return r.withContents(ctx, &copied)
}

func (r *BunElementRepository) ListByPage(ctx context.Context, pageID uuid.UUID) ([]*Element, error) {
	records, _, err := r.elements.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.page_id = ?", pageID).
				OrderExpr("?TableAlias.position ASC")
		}),
		storage.SelectAll(),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "element", pageID.String())
	}
	if len(records) == 0 {
		return records, nil
	}

	ids := make([]uuid.UUID, 0, len(records))
	byID := make(map[uuid.UUID]*Element, len(records))
	for _, record := range records {
		record.Contents = nil
		ids = append(ids, record.ID)
		byID[record.ID] = record
	}
	contents, err := r.listContents(ctx, ids...)
	if err != nil {
		return nil, err
	}
	for _, content := range contents {
		if element, ok := byID[content.ElementID]; ok {
			element.Contents = append(element.Contents, content)
		}
	}
	return records, nil
}

func (r *BunElementRepository) NextPosition(ctx context.Context, pageID uuid.UUID) (int, error) {
	var maxPosition sql.NullInt64
	if err := r.db.NewSelect().
		Model((*Element)(nil)).
		ColumnExpr("MAX(position)").
		Where("page_id = ?", pageID).
		Scan(ctx, &maxPosition); err != nil {
		return 0, fmt.Errorf("element repository error: %w", err)
	}
	return int(maxPosition.Int64) + 1, nil
}

func (r *BunElementRepository) CreateContent(ctx context.Context, content *Content) (*Content, error) {
	if _, err := r.elements.GetByID(ctx, content.ElementID.String()); err != nil {
		return nil, mapRepositoryError(err, "element", content.ElementID.String())
	}
	exists, err := r.db.NewSelect().
		Model((*Content)(nil)).
		Where("element_id = ?", content.ElementID).
		Where("name = ?", content.Name).
		Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("content repository error: %w", err)
	}
	if exists {
		return nil, ErrContentExists
	}

	copied := *content
	if err := copied.encode(); err != nil {
		return nil, err
	}
	created, err := r.contents.Create(ctx, &copied)
	if err != nil {
		return nil, fmt.Errorf("content repository error: %w", err)
	}
	if err := created.decode(); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunElementRepository) GetContent(ctx context.Context, id uuid.UUID) (*Content, error) {
	record, err := r.contents.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "content", id.String())
	}
	if err := record.decode(); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunElementRepository) UpdateContent(ctx context.Context, content *Content) (*Content, error) {
	copied := *content
	if err := copied.encode(); err != nil {
		return nil, err
	}
	if _, err := r.contents.Update(ctx, &copied,
		repository.UpdateByID(copied.ID.String()),
		repository.UpdateColumns("essence_payload", "settings", "updated_at"),
	); err != nil {
		return nil, mapRepositoryError(err, "content", copied.ID.String())
	}
	return r.GetContent(ctx, copied.ID)
}

func (r *BunElementRepository) withContents(ctx context.Context, element *Element) (*Element, error) {
	contents, err := r.listContents(ctx, element.ID)
	if err != nil {
		return nil, err
	}
	element.Contents = contents
	return element, nil
}

func (r *BunElementRepository) listContents(ctx context.Context, elementIDs ...uuid.UUID) ([]*Content, error) {
	records, _, err := r.contents.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.element_id IN (?)", bun.In(elementIDs)).
				OrderExpr("?TableAlias.position ASC").
				OrderExpr("?TableAlias.name ASC")
		}),
		storage.SelectAll(),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "content", "")
	}
	for _, record := range records {
		if err := record.decode(); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) || errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

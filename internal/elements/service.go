package elements

import (
	"context"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-cms-editor/internal/essences"
	"github.com/goliatone/go-cms-editor/internal/identity"
	"github.com/goliatone/go-cms-editor/internal/logging"
	"github.com/goliatone/go-cms-editor/internal/pictures"
	cmsvalidation "github.com/goliatone/go-cms-editor/internal/validation"
	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

// Service manages elements and the essences of their contents.
type Service interface {
	Create(ctx context.Context, req CreateElementRequest) (*Element, error)
	Get(ctx context.Context, id uuid.UUID) (*Element, error)
	ListByPage(ctx context.Context, pageID uuid.UUID) ([]*Element, error)
	GetContent(ctx context.Context, id uuid.UUID) (*Content, error)
	CreateContent(ctx context.Context, elementID uuid.UUID, name string) (*Content, error)
	UpdateEssence(ctx context.Context, contentID uuid.UUID, essence essences.Essence) (*Content, error)
	Definitions() *Registry
}

// CreateElementRequest places a new element on a page. With
// AutogenerateContents every content declared by the definition is created
// and seeded with its default.
type CreateElementRequest struct {
	ID                   uuid.UUID
	PageID               uuid.UUID
	Name                 string
	Position             int
	AutogenerateContents bool
}

func (r CreateElementRequest) Validate() error {
	return cmsvalidation.Struct(&r,
		validation.Field(&r.PageID, cmsvalidation.NotNilUUID(ErrPageRequired)),
		validation.Field(&r.Name, cmsvalidation.Reports(ErrNameRequired, validation.Required)),
		validation.Field(&r.Position, validation.Min(0)),
	)
}

// PictureLookup resolves the picture attached to a picture essence.
type PictureLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*pictures.Picture, error)
}

type ServiceOption func(*service)

func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

type IDGenerator func() uuid.UUID

func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithPictureLookup enables resolving picture essences on read.
func WithPictureLookup(lookup PictureLookup) ServiceOption {
	return func(s *service) {
		s.pictures = lookup
	}
}

func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	repo     ElementRepository
	registry *Registry
	pictures PictureLookup
	now      func() time.Time
	id       IDGenerator
	logger   interfaces.Logger
}

func NewService(repo ElementRepository, registry *Registry, opts ...ServiceOption) Service {
	if registry == nil {
		registry = NewRegistry()
	}
	s := &service{
		repo:     repo,
		registry: registry,
		now:      time.Now,
		id:       uuid.New,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Definitions() *Registry {
	return s.registry
}

func (s *service) Create(ctx context.Context, req CreateElementRequest) (*Element, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		return nil, err
	}
	def, ok := s.registry.Get(req.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDefinitionNotFound, req.Name)
	}

	position := req.Position
	if position == 0 {
		next, err := s.repo.NextPosition(ctx, req.PageID)
		if err != nil {
			return nil, err
		}
		position = next
	}

	id := req.ID
	if id == uuid.Nil {
		id = s.id()
	}
	now := s.now().UTC()
	element := &Element{
		ID:        id,
		PageID:    req.PageID,
		Name:      def.Name,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.AutogenerateContents {
		for idx, contentDef := range def.Contents {
			content, err := s.buildContent(element.ID, contentDef, idx+1, now)
			if err != nil {
				return nil, err
			}
			element.Contents = append(element.Contents, content)
		}
	}

	created, err := s.repo.Create(ctx, element)
	if err != nil {
		return nil, err
	}
	logging.WithEditorContext(s.logger, created.Name, "").Debug("elements.create",
		"element_id", created.ID,
		"page_id", created.PageID,
		"contents", len(created.Contents),
	)
	return s.resolve(ctx, created)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Element, error) {
	element, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, element)
}

func (s *service) ListByPage(ctx context.Context, pageID uuid.UUID) ([]*Element, error) {
	records, err := s.repo.ListByPage(ctx, pageID)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if _, err := s.resolve(ctx, record); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func (s *service) GetContent(ctx context.Context, id uuid.UUID) (*Content, error) {
	content, err := s.repo.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolveContent(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *service) CreateContent(ctx context.Context, elementID uuid.UUID, name string) (*Content, error) {
	name = strings.TrimSpace(name)
	element, err := s.repo.GetByID(ctx, elementID)
	if err != nil {
		return nil, err
	}
	def, ok := s.registry.Get(element.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDefinitionNotFound, element.Name)
	}
	contentDef, ok := def.Content(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrContentNotDeclared, element.Name, name)
	}
	if element.ContentByName(name) != nil {
		return nil, ErrContentExists
	}

	position := 1
	for idx, candidate := range def.Contents {
		if candidate.Name == name {
			position = idx + 1
		}
	}
	content, err := s.buildContent(element.ID, contentDef, position, s.now().UTC())
	if err != nil {
		return nil, err
	}
	created, err := s.repo.CreateContent(ctx, content)
	if err != nil {
		return nil, err
	}
	if err := s.resolveContent(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *service) UpdateEssence(ctx context.Context, contentID uuid.UUID, essence essences.Essence) (*Content, error) {
	if essence == nil {
		return nil, ErrEssenceRequired
	}
	content, err := s.repo.GetContent(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if essence.Kind() != content.Kind {
		return nil, fmt.Errorf("%w: %s is %s, got %s", ErrEssenceKindMismatch, content.Name, content.Kind, essence.Kind())
	}
	content.Essence = essence
	content.UpdatedAt = s.now().UTC()
	updated, err := s.repo.UpdateContent(ctx, content)
	if err != nil {
		return nil, err
	}
	if err := s.resolveContent(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *service) buildContent(elementID uuid.UUID, def ContentDefinition, position int, now time.Time) (*Content, error) {
	kind, err := def.Kind()
	if err != nil {
		return nil, err
	}
	essence, err := essences.WithDefault(kind, def.Default)
	if err != nil {
		return nil, err
	}
	var settings Settings
	if len(def.Settings) > 0 {
		settings = Settings(def.Settings).Clone()
	}
	return &Content{
		ID:        identity.ContentUUID(elementID, def.Name),
		ElementID: elementID,
		Name:      def.Name,
		Position:  position,
		Kind:      kind,
		Essence:   essence,
		Settings:  settings,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *service) resolve(ctx context.Context, element *Element) (*Element, error) {
	for _, content := range element.Contents {
		if err := s.resolveContent(ctx, content); err != nil {
			return nil, err
		}
	}
	return element, nil
}

// resolveContent loads the picture behind a picture essence. A dangling
// picture id leaves the essence without ingredient.
func (s *service) resolveContent(ctx context.Context, content *Content) error {
	picture := content.PictureEssence()
	if picture == nil || picture.PictureID == nil || picture.Picture != nil || s.pictures == nil {
		return nil
	}
	record, err := s.pictures.Get(ctx, *picture.PictureID)
	if err != nil {
		if pictures.IsNotFound(err) {
			s.logger.Warn("elements.picture_missing", "content_id", content.ID, "picture_id", picture.PictureID)
			return nil
		}
		return err
	}
	picture.Picture = record
	return nil
}

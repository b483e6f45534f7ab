package pages

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-cms-editor/internal/logging"
	cmsvalidation "github.com/goliatone/go-cms-editor/internal/validation"
	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

// Service manages the page tree of each language.
type Service interface {
	Create(ctx context.Context, req CreatePageRequest) (*Page, error)
	Get(ctx context.Context, id uuid.UUID) (*Page, error)
	ListByLanguage(ctx context.Context, languageID uuid.UUID, opts ListOptions) ([]*Page, error)
}

// CreatePageRequest describes a page to append to a language tree. Without a
// ParentID the page becomes a language root.
type CreatePageRequest struct {
	ID         uuid.UUID
	LanguageID uuid.UUID
	ParentID   *uuid.UUID
	Name       string
	Urlname    string
	Public     bool
}

// ListOptions filters ListByLanguage.
type ListOptions struct {
	PublicOnly bool
}

func (r CreatePageRequest) Validate() error {
	return cmsvalidation.Struct(&r,
		validation.Field(&r.LanguageID, cmsvalidation.NotNilUUID(ErrLanguageRequired)),
		validation.Field(&r.Name, cmsvalidation.Reports(ErrNameRequired, validation.Required)),
	)
}

type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

type IDGenerator func() uuid.UUID

// WithIDGenerator overrides the generator used for new pages.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger attaches a logger used for structured diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	pages  PageRepository
	now    func() time.Time
	id     IDGenerator
	logger interfaces.Logger
}

// NewService constructs a page service over repo.
func NewService(repo PageRepository, opts ...ServiceOption) Service {
	s := &service{
		pages:  repo,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, req CreatePageRequest) (*Page, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	urlname, err := normalizeUrlname(req.Urlname, req.Name)
	if err != nil {
		return nil, err
	}
	if _, err := s.pages.GetByUrlname(ctx, req.LanguageID, urlname); err == nil {
		return nil, ErrUrlnameExists
	} else if !IsNotFound(err) {
		return nil, err
	}

	id := req.ID
	if id == uuid.Nil {
		id = s.id()
	}
	now := s.now().UTC()
	record := &Page{
		ID:         id,
		LanguageID: req.LanguageID,
		Name:       req.Name,
		Urlname:    urlname,
		Public:     req.Public,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if req.ParentID != nil && *req.ParentID != uuid.Nil {
		parent, err := s.pages.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.LanguageID != req.LanguageID {
			return nil, ErrParentLanguageMismatch
		}
		parentID := parent.ID
		record.ParentID = &parentID
	} else {
		record.LanguageRoot = true
	}

	created, err := s.pages.Append(ctx, record)
	if err != nil {
		return nil, err
	}
	logging.WithPage(s.logger, created.ID.String()).Debug("pages.create",
		"urlname", created.Urlname,
		"lft", created.Lft,
		"rgt", created.Rgt,
		"depth", created.Depth,
	)
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Page, error) {
	return s.pages.GetByID(ctx, id)
}

func (s *service) ListByLanguage(ctx context.Context, languageID uuid.UUID, opts ListOptions) ([]*Page, error) {
	records, err := s.pages.ListByLanguage(ctx, languageID)
	if err != nil {
		return nil, err
	}
	if !opts.PublicOnly {
		return records, nil
	}
	filtered := records[:0]
	for _, page := range records {
		if page.Public {
			filtered = append(filtered, page)
		}
	}
	return filtered, nil
}

func normalizeUrlname(urlname, name string) (string, error) {
	candidate := strings.TrimSpace(urlname)
	if candidate == "" {
		candidate = name
	}
	normalized, err := slug.Normalize(candidate)
	if err != nil {
		return "", err
	}
	if normalized == "" {
		return "", ErrUrlnameRequired
	}
	return normalized, nil
}

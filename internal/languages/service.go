package languages

import (
	"context"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	cmsvalidation "github.com/goliatone/go-cms-editor/internal/validation"
	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

var codePattern = regexp.MustCompile(`^[a-z]{2}(-[a-z]{2})?$`)

// Service manages languages and resolves the current one.
type Service interface {
	interfaces.LanguageResolver
	Create(ctx context.Context, req CreateLanguageRequest) (*Language, error)
	Get(ctx context.Context, id uuid.UUID) (*Language, error)
	GetByCode(ctx context.Context, code string) (*Language, error)
	Default(ctx context.Context) (*Language, error)
	List(ctx context.Context) ([]*Language, error)
}

// CreateLanguageRequest captures the fields required to add a language.
type CreateLanguageRequest struct {
	ID      uuid.UUID
	Code    string
	Name    string
	Default bool
}

// Validate checks the request with ozzo-validation.
func (r CreateLanguageRequest) Validate() error {
	return cmsvalidation.Struct(&r,
		validation.Field(&r.Code,
			cmsvalidation.Reports(ErrCodeRequired, validation.Required),
			cmsvalidation.Reports(ErrCodeInvalid, validation.Match(codePattern)),
		),
		validation.Field(&r.Name, validation.Required),
	)
}

// ServiceOption configures the service.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides the generator used for new identifiers.
func WithIDGenerator(generator func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

type service struct {
	repo LanguageRepository
	now  func() time.Time
	id   func() uuid.UUID
}

// NewService constructs a language service.
func NewService(repo LanguageRepository, opts ...ServiceOption) Service {
	s := &service{
		repo: repo,
		now:  time.Now,
		id:   uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, req CreateLanguageRequest) (*Language, error) {
	req.Code = strings.ToLower(strings.TrimSpace(req.Code))
	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByCode(ctx, req.Code); err == nil && existing != nil {
		return nil, ErrCodeExists
	} else if err != nil && !IsNotFound(err) {
		return nil, err
	}

	current, err := s.repo.GetDefault(ctx)
	if err != nil && !IsNotFound(err) {
		return nil, err
	}
	isDefault := req.Default
	if current != nil {
		if req.Default {
			return nil, ErrDefaultLanguageExists
		}
	} else {
		// the first language becomes the default
		isDefault = true
	}

	id := req.ID
	if id == uuid.Nil {
		id = s.id()
	}
	now := s.now().UTC()
	return s.repo.Create(ctx, &Language{
		ID:        id,
		Code:      req.Code,
		Name:      req.Name,
		Default:   isDefault,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Language, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByCode(ctx context.Context, code string) (*Language, error) {
	return s.repo.GetByCode(ctx, strings.ToLower(strings.TrimSpace(code)))
}

func (s *service) Default(ctx context.Context) (*Language, error) {
	lang, err := s.repo.GetDefault(ctx)
	if IsNotFound(err) {
		return nil, ErrNoDefaultLanguage
	}
	return lang, err
}

func (s *service) List(ctx context.Context) ([]*Language, error) {
	return s.repo.List(ctx)
}

// CurrentLanguageID returns the language carried on ctx, falling back to the
// default language.
func (s *service) CurrentLanguageID(ctx context.Context) (uuid.UUID, error) {
	if id, ok := CurrentID(ctx); ok {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return uuid.Nil, err
		}
		return id, nil
	}
	lang, err := s.Default(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return lang.ID, nil
}

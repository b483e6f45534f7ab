package pictures

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	cmsvalidation "github.com/goliatone/go-cms-editor/internal/validation"
)

// Service registers pictures and resolves them for picture essences.
type Service interface {
	Create(ctx context.Context, req CreatePictureRequest) (*Picture, error)
	Get(ctx context.Context, id uuid.UUID) (*Picture, error)
	List(ctx context.Context) ([]*Picture, error)
}

// CreatePictureRequest carries the metadata of an already stored image file.
type CreatePictureRequest struct {
	ID       uuid.UUID
	Name     string
	FileName string
	FileUID  string
	Width    int
	Height   int
	Format   string
	Size     int64
}

func (r CreatePictureRequest) Validate() error {
	return cmsvalidation.Struct(&r,
		validation.Field(&r.FileName, cmsvalidation.Reports(ErrFileNameRequired, validation.Required)),
		validation.Field(&r.Width, cmsvalidation.Reports(ErrDimensionsInvalid, validation.Min(1))),
		validation.Field(&r.Height, cmsvalidation.Reports(ErrDimensionsInvalid, validation.Min(1))),
		validation.Field(&r.Size, validation.Min(int64(0))),
	)
}

type ServiceOption func(*service)

func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

func WithIDGenerator(generator func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

type service struct {
	repo PictureRepository
	now  func() time.Time
	id   func() uuid.UUID
}

func NewService(repo PictureRepository, opts ...ServiceOption) Service {
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

func (s *service) Create(ctx context.Context, req CreatePictureRequest) (*Picture, error) {
	req.FileName = strings.TrimSpace(req.FileName)
	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := req.ID
	if id == uuid.Nil {
		id = s.id()
	}
	name := req.Name
	if name == "" {
		name = trimExtension(req.FileName)
	}
	now := s.now().UTC()
	return s.repo.Create(ctx, &Picture{
		ID:              id,
		Name:            name,
		ImageFileName:   req.FileName,
		ImageFileUID:    req.FileUID,
		ImageFileWidth:  req.Width,
		ImageFileHeight: req.Height,
		ImageFileFormat: strings.ToLower(strings.TrimSpace(req.Format)),
		ImageFileSize:   req.Size,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Picture, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Picture, error) {
	return s.repo.List(ctx)
}

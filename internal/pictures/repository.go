package pictures

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrFileNameRequired  = errors.New("pictures: image file name is required")
	ErrDimensionsInvalid = errors.New("pictures: image dimensions must be positive")
)

// PictureRepository persists pictures.
type PictureRepository interface {
	Create(ctx context.Context, record *Picture) (*Picture, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Picture, error)
	List(ctx context.Context) ([]*Picture, error)
}

// NotFoundError reports a missing picture.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return "picture not found"
	}
	return fmt.Sprintf("picture %q not found", e.Key)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

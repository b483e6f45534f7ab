package elements

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrPageRequired        = errors.New("elements: page is required")
	ErrNameRequired        = errors.New("elements: name is required")
	ErrContentExists       = errors.New("elements: content already exists on element")
	ErrContentNotDeclared  = errors.New("elements: content is not declared by the element definition")
	ErrEssenceKindMismatch = errors.New("elements: essence kind does not match content")
	ErrEssenceRequired     = errors.New("elements: essence is required")
)

// ElementRepository persists elements and their contents. Returned elements
// carry their contents ordered by position.
type ElementRepository interface {
	Create(ctx context.Context, element *Element) (*Element, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Element, error)
	ListByPage(ctx context.Context, pageID uuid.UUID) ([]*Element, error)
	NextPosition(ctx context.Context, pageID uuid.UUID) (int, error)
	CreateContent(ctx context.Context, content *Content) (*Content, error)
	GetContent(ctx context.Context, id uuid.UUID) (*Content, error)
	UpdateContent(ctx context.Context, content *Content) (*Content, error)
}

// NotFoundError reports a missing element or content.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	resource := e.Resource
	if resource == "" {
		resource = "element"
	}
	if e.Key == "" {
		return resource + " not found"
	}
	return fmt.Sprintf("%s %q not found", resource, e.Key)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

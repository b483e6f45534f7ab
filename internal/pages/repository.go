package pages

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrLanguageRequired       = errors.New("pages: language is required")
	ErrNameRequired           = errors.New("pages: name is required")
	ErrUrlnameRequired        = errors.New("pages: urlname is required")
	ErrUrlnameExists          = errors.New("pages: urlname already exists for language")
	ErrParentLanguageMismatch = errors.New("pages: parent belongs to another language")
)

// PageRepository persists the nested set of pages.
type PageRepository interface {
	// Append stores record as the last child of record.ParentID, or as the
	// last root of its language when ParentID is nil. Lft, Rgt and Depth are
	// assigned by the repository.
	Append(ctx context.Context, record *Page) (*Page, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Page, error)
	GetByUrlname(ctx context.Context, languageID uuid.UUID, urlname string) (*Page, error)
	ListByLanguage(ctx context.Context, languageID uuid.UUID) ([]*Page, error)
}

// NotFoundError reports a missing page.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return "page not found"
	}
	return fmt.Sprintf("page %q not found", e.Key)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

package languages

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrCodeRequired          = errors.New("languages: code is required")
	ErrCodeInvalid           = errors.New("languages: code is invalid")
	ErrCodeExists            = errors.New("languages: code already exists")
	ErrDefaultLanguageExists = errors.New("languages: default language already set")
	ErrNoDefaultLanguage     = errors.New("languages: no default language configured")
)

// LanguageRepository persists languages.
type LanguageRepository interface {
	Create(ctx context.Context, record *Language) (*Language, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Language, error)
	GetByCode(ctx context.Context, code string) (*Language, error)
	GetDefault(ctx context.Context) (*Language, error)
	List(ctx context.Context) ([]*Language, error)
}

// NotFoundError reports a missing language.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return "language not found"
	}
	return fmt.Sprintf("language %q not found", e.Key)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

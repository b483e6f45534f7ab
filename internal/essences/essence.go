package essences

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies an essence variant.
type Kind string

const (
	KindText     Kind = "text"
	KindRichtext Kind = "richtext"
	KindBoolean  Kind = "boolean"
	KindPicture  Kind = "picture"
)

var ErrUnknownKind = errors.New("essences: unknown kind")

// Essence is the typed value held by a content. Each variant knows its
// ingredient and the editor partial that renders it.
type Essence interface {
	Kind() Kind
	// Ingredient returns the underlying value, or nil when the essence holds
	// nothing.
	Ingredient() any
	// Partial names the editor template for the variant.
	Partial() string
}

// Kinds lists every supported kind.
func Kinds() []Kind {
	return []Kind{KindText, KindRichtext, KindBoolean, KindPicture}
}

// ParseKind normalizes value into a known Kind.
func ParseKind(value string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(value)))
	switch kind {
	case KindText, KindRichtext, KindBoolean, KindPicture:
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, value)
}

// New returns an empty essence of kind.
func New(kind Kind) (Essence, error) {
	switch kind {
	case KindText:
		return &Text{}, nil
	case KindRichtext:
		return &Richtext{}, nil
	case KindBoolean:
		return &Boolean{}, nil
	case KindPicture:
		return &Picture{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// WithDefault returns a fresh essence of kind seeded with value. Only scalar
// kinds accept defaults; other kinds ignore it.
func WithDefault(kind Kind, value any) (Essence, error) {
	essence, err := New(kind)
	if err != nil || value == nil {
		return essence, err
	}
	switch e := essence.(type) {
	case *Text:
		e.Body = fmt.Sprint(value)
	case *Richtext:
		e.Body = fmt.Sprint(value)
	case *Boolean:
		switch v := value.(type) {
		case bool:
			e.Value = v
		case string:
			e.Value = strings.EqualFold(v, "true")
		}
	}
	return essence, nil
}

package languages

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

// WithCurrent returns a context carrying the current language id.
func WithCurrent(ctx context.Context, id uuid.UUID) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, contextKey{}, id)
}

// CurrentID returns the language id stored on ctx, if any.
func CurrentID(ctx context.Context) (uuid.UUID, bool) {
	if ctx == nil {
		return uuid.Nil, false
	}
	id, ok := ctx.Value(contextKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

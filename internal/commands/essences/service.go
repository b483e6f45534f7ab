package essencescmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-cms-editor/internal/elements"
	"github.com/goliatone/go-cms-editor/internal/essences"
	"github.com/goliatone/go-cms-editor/internal/pictures"
)

// ContentService is the part of elements.Service the essence commands use.
type ContentService interface {
	GetContent(ctx context.Context, id uuid.UUID) (*elements.Content, error)
	CreateContent(ctx context.Context, elementID uuid.UUID, name string) (*elements.Content, error)
	UpdateEssence(ctx context.Context, contentID uuid.UUID, essence essences.Essence) (*elements.Content, error)
}

// PictureService resolves pictures for AssignPictureCommand.
type PictureService interface {
	Get(ctx context.Context, id uuid.UUID) (*pictures.Picture, error)
}

var (
	_ ContentService = (elements.Service)(nil)
	_ PictureService = (pictures.Service)(nil)
)

func contentFields(contentID uuid.UUID) map[string]any {
	if contentID == uuid.Nil {
		return nil
	}
	return map[string]any{"content_id": contentID}
}

func requireContent(errs validation.Errors, contentID uuid.UUID, messageType string) {
	if contentID == uuid.Nil {
		errs["content_id"] = validation.NewError(messageType+".content_id_required", "content_id is required")
	}
}

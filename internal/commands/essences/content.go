package essencescmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-cms-editor/internal/commands"
	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

const createContentMessageType = "editor.contents.create"

// CreateContentCommand creates a content declared by the element definition
// but missing on the element. It backs the "create content" link rendered by
// the essence editor.
type CreateContentCommand struct {
	ElementID uuid.UUID `json:"element_id"`
	Name      string    `json:"name"`
}

// Type implements command.Message.
func (CreateContentCommand) Type() string { return createContentMessageType }

func (m CreateContentCommand) Validate() error {
	errs := validation.Errors{}
	if m.ElementID == uuid.Nil {
		errs["element_id"] = validation.NewError(createContentMessageType+".element_id_required", "element_id is required")
	}
	if strings.TrimSpace(m.Name) == "" {
		errs["name"] = validation.NewError(createContentMessageType+".name_required", "name is required")
	}
	return errs.Filter()
}

// NewCreateContentHandler returns a handler creating missing contents.
func NewCreateContentHandler(service ContentService, logger interfaces.Logger, opts ...commands.HandlerOption[CreateContentCommand]) *commands.Handler[CreateContentCommand] {
	exec := func(ctx context.Context, msg CreateContentCommand) error {
		_, err := service.CreateContent(ctx, msg.ElementID, strings.TrimSpace(msg.Name))
		return err
	}
	handlerOpts := []commands.HandlerOption[CreateContentCommand]{
		commands.WithLogger[CreateContentCommand](logger),
		commands.WithOperation[CreateContentCommand]("contents.create"),
		commands.WithMessageFields(func(msg CreateContentCommand) map[string]any {
			if msg.ElementID == uuid.Nil {
				return nil
			}
			return map[string]any{"element_id": msg.ElementID, "name": msg.Name}
		}),
	}
	return commands.NewHandler(exec, append(handlerOpts, opts...)...)
}

package essencescmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-cms-editor/internal/commands"
	"github.com/goliatone/go-cms-editor/internal/essences"
	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

const (
	updateTextMessageType     = "editor.essences.text.update"
	updateRichtextMessageType = "editor.essences.richtext.update"
	setBooleanMessageType     = "editor.essences.boolean.set"
)

// UpdateTextCommand replaces the body and link of a text essence.
type UpdateTextCommand struct {
	ContentID  uuid.UUID `json:"content_id"`
	Body       string    `json:"body"`
	Link       string    `json:"link,omitempty"`
	LinkTitle  string    `json:"link_title,omitempty"`
	LinkTarget string    `json:"link_target,omitempty"`
}

// Type implements command.Message.
func (UpdateTextCommand) Type() string { return updateTextMessageType }

func (m UpdateTextCommand) Validate() error {
	errs := validation.Errors{}
	requireContent(errs, m.ContentID, updateTextMessageType)
	switch m.LinkTarget {
	case "", "_blank", "_self", "_parent", "_top":
	default:
		errs["link_target"] = validation.NewError(updateTextMessageType+".link_target_invalid", "link_target must be a browsing context keyword")
	}
	return errs.Filter()
}

// NewUpdateTextHandler returns a handler updating text essences.
func NewUpdateTextHandler(service ContentService, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateTextCommand]) *commands.Handler[UpdateTextCommand] {
	exec := func(ctx context.Context, msg UpdateTextCommand) error {
		_, err := service.UpdateEssence(ctx, msg.ContentID, &essences.Text{
			Body:       msg.Body,
			Link:       msg.Link,
			LinkTitle:  msg.LinkTitle,
			LinkTarget: msg.LinkTarget,
		})
		return err
	}
	handlerOpts := []commands.HandlerOption[UpdateTextCommand]{
		commands.WithLogger[UpdateTextCommand](logger),
		commands.WithOperation[UpdateTextCommand]("essences.text.update"),
		commands.WithMessageFields(func(msg UpdateTextCommand) map[string]any {
			return contentFields(msg.ContentID)
		}),
	}
	return commands.NewHandler(exec, append(handlerOpts, opts...)...)
}

// UpdateRichtextCommand replaces the Markdown source of a richtext essence.
type UpdateRichtextCommand struct {
	ContentID uuid.UUID `json:"content_id"`
	Body      string    `json:"body"`
}

// Type implements command.Message.
func (UpdateRichtextCommand) Type() string { return updateRichtextMessageType }

func (m UpdateRichtextCommand) Validate() error {
	errs := validation.Errors{}
	requireContent(errs, m.ContentID, updateRichtextMessageType)
	return errs.Filter()
}

// NewUpdateRichtextHandler returns a handler updating richtext essences.
func NewUpdateRichtextHandler(service ContentService, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateRichtextCommand]) *commands.Handler[UpdateRichtextCommand] {
	exec := func(ctx context.Context, msg UpdateRichtextCommand) error {
		_, err := service.UpdateEssence(ctx, msg.ContentID, &essences.Richtext{Body: msg.Body})
		return err
	}
	handlerOpts := []commands.HandlerOption[UpdateRichtextCommand]{
		commands.WithLogger[UpdateRichtextCommand](logger),
		commands.WithOperation[UpdateRichtextCommand]("essences.richtext.update"),
		commands.WithMessageFields(func(msg UpdateRichtextCommand) map[string]any {
			return contentFields(msg.ContentID)
		}),
	}
	return commands.NewHandler(exec, append(handlerOpts, opts...)...)
}

// SetBooleanCommand toggles a boolean essence.
type SetBooleanCommand struct {
	ContentID uuid.UUID `json:"content_id"`
	Value     bool      `json:"value"`
}

// Type implements command.Message.
func (SetBooleanCommand) Type() string { return setBooleanMessageType }

func (m SetBooleanCommand) Validate() error {
	errs := validation.Errors{}
	requireContent(errs, m.ContentID, setBooleanMessageType)
	return errs.Filter()
}

// NewSetBooleanHandler returns a handler updating boolean essences.
func NewSetBooleanHandler(service ContentService, logger interfaces.Logger, opts ...commands.HandlerOption[SetBooleanCommand]) *commands.Handler[SetBooleanCommand] {
	exec := func(ctx context.Context, msg SetBooleanCommand) error {
		_, err := service.UpdateEssence(ctx, msg.ContentID, &essences.Boolean{Value: msg.Value})
		return err
	}
	handlerOpts := []commands.HandlerOption[SetBooleanCommand]{
		commands.WithLogger[SetBooleanCommand](logger),
		commands.WithOperation[SetBooleanCommand]("essences.boolean.set"),
		commands.WithMessageFields(func(msg SetBooleanCommand) map[string]any {
			return contentFields(msg.ContentID)
		}),
	}
	return commands.NewHandler(exec, append(handlerOpts, opts...)...)
}

package essencescmd

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-cms-editor/internal/commands"
	"github.com/goliatone/go-cms-editor/internal/elements"
	"github.com/goliatone/go-cms-editor/internal/essences"
	"github.com/goliatone/go-cms-editor/internal/thumbnails"
	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

const assignPictureMessageType = "editor.essences.picture.assign"

// AssignPictureCommand attaches a picture to a picture essence and updates its
// presentation attributes. A nil PictureID detaches the current picture.
// CropFrom and CropSize either both carry a value or are both empty.
type AssignPictureCommand struct {
	ContentID uuid.UUID  `json:"content_id"`
	PictureID *uuid.UUID `json:"picture_id,omitempty"`
	Caption   string     `json:"caption,omitempty"`
	Title     string     `json:"title,omitempty"`
	AltTag    string     `json:"alt_tag,omitempty"`
	CropFrom  string     `json:"crop_from,omitempty"`
	CropSize  string     `json:"crop_size,omitempty"`
}

// Type implements command.Message.
func (AssignPictureCommand) Type() string { return assignPictureMessageType }

func (m AssignPictureCommand) Validate() error {
	errs := validation.Errors{}
	requireContent(errs, m.ContentID, assignPictureMessageType)
	if m.PictureID != nil && *m.PictureID == uuid.Nil {
		errs["picture_id"] = validation.NewError(assignPictureMessageType+".picture_id_invalid", "picture_id must be a valid identifier when provided")
	}
	if (m.CropFrom == "") != (m.CropSize == "") {
		errs["crop_size"] = validation.NewError(assignPictureMessageType+".crop_incomplete", "crop_from and crop_size must be provided together")
	}
	if m.CropFrom != "" {
		if _, err := thumbnails.ParseSize(m.CropFrom); err != nil {
			errs["crop_from"] = validation.NewError(assignPictureMessageType+".crop_from_invalid", err.Error())
		}
	}
	if m.CropSize != "" {
		if size, err := thumbnails.ParseSize(m.CropSize); err != nil || size.IsZero() {
			errs["crop_size"] = validation.NewError(assignPictureMessageType+".crop_size_invalid", "crop_size must be a positive WxH size")
		}
	}
	return errs.Filter()
}

// NewAssignPictureHandler returns a handler assigning pictures to picture
// essences. The picture must exist.
func NewAssignPictureHandler(service ContentService, pictureService PictureService, logger interfaces.Logger, opts ...commands.HandlerOption[AssignPictureCommand]) *commands.Handler[AssignPictureCommand] {
	exec := func(ctx context.Context, msg AssignPictureCommand) error {
		content, err := service.GetContent(ctx, msg.ContentID)
		if err != nil {
			return err
		}
		if content.Kind != essences.KindPicture {
			return fmt.Errorf("%w: %s is %s", elements.ErrEssenceKindMismatch, content.Name, content.Kind)
		}

		essence := &essences.Picture{}
		if current := content.PictureEssence(); current != nil {
			*essence = *current
		}
		essence.Caption = msg.Caption
		essence.Title = msg.Title
		essence.AltTag = msg.AltTag
		essence.CropFrom = msg.CropFrom
		essence.CropSize = msg.CropSize

		if msg.PictureID == nil {
			essence.Attach(nil)
		} else {
			picture, err := pictureService.Get(ctx, *msg.PictureID)
			if err != nil {
				return err
			}
			essence.Attach(picture)
		}

		_, err = service.UpdateEssence(ctx, content.ID, essence)
		return err
	}
	handlerOpts := []commands.HandlerOption[AssignPictureCommand]{
		commands.WithLogger[AssignPictureCommand](logger),
		commands.WithOperation[AssignPictureCommand]("essences.picture.assign"),
		commands.WithMessageFields(func(msg AssignPictureCommand) map[string]any {
			fields := contentFields(msg.ContentID)
			if msg.PictureID != nil {
				if fields == nil {
					fields = map[string]any{}
				}
				fields["picture_id"] = *msg.PictureID
			}
			return fields
		}),
	}
	return commands.NewHandler(exec, append(handlerOpts, opts...)...)
}

package editor

import (
	"context"
	"fmt"
	"html/template"

	"github.com/goliatone/go-cms-editor/internal/elements"
	"github.com/goliatone/go-cms-editor/internal/logging"
	"github.com/goliatone/go-cms-editor/internal/thumbnails"
	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

// ThumbnailOptions select the rendition shown in the editor. The requested
// size is ImageSize, else Size, else the content's image_size or size
// setting.
type ThumbnailOptions struct {
	ImageSize string
	Size      string
	Crop      bool
	Upsample  bool
	// Settings override the content's own settings for this call.
	Settings map[string]any
}

type thumbnailView struct {
	URL   string
	Alt   string
	Title string
	Size  thumbnails.Size
}

// EssencePictureThumbnail renders the <img> previewing content's picture. It
// renders nothing when no picture is assigned.
func (h *Helper) EssencePictureThumbnail(ctx context.Context, content *elements.Content, opts ThumbnailOptions) (template.HTML, error) {
	if content == nil || content.Ingredient() == nil {
		return "", nil
	}
	essence := content.PictureEssence()
	if essence == nil {
		return "", fmt.Errorf("%w: %s", ErrNotPicture, content.Name)
	}
	if h.thumbnails == nil {
		return "", fmt.Errorf("editor: thumbnail url builder not configured")
	}
	picture := essence.Picture

	settings := mergeSettings(content, opts.Settings)
	requested, err := h.requestedSize(opts, settings)
	if err != nil {
		return "", err
	}
	crop := opts.Crop || settings.Bool("crop") || essence.HasCustomCrop()
	if essence.HasCustomCrop() {
		custom, err := thumbnails.ParseSize(essence.CropSize)
		if err != nil {
			return "", err
		}
		requested = custom
	}

	source := thumbnails.Size{Width: essence.ImageFileWidth(), Height: essence.ImageFileHeight()}
	size := thumbnails.ThumbnailSize(source, requested, crop, h.frame)
	upsample := opts.Upsample || settings.Bool("upsample")
	if upsample {
		size = size.Fit(h.frame, true)
	}

	req := interfaces.ThumbnailRequest{
		PictureID: picture.ID,
		Name:      picture.Urlname(),
		Format:    picture.Format(),
		Size:      size.String(),
		Crop:      crop,
		Upsample:  upsample,
	}
	if essence.HasCustomCrop() {
		req.CropFrom = essence.CropFrom
		req.CropSize = essence.CropSize
	}
	url, err := h.thumbnails.ThumbnailURL(req)
	if err != nil {
		return "", err
	}

	logging.WithEditorContext(h.logger, "", content.Name).Debug("editor.thumbnail",
		"source", source.String(),
		"requested", requested.String(),
		"crop", crop,
		"size", size.String(),
	)
	return h.render("thumbnail", thumbnailView{
		URL:   url,
		Alt:   picture.Name,
		Title: "Image: " + picture.Name,
		Size:  size,
	})
}

func (h *Helper) requestedSize(opts ThumbnailOptions, settings elements.Settings) (thumbnails.Size, error) {
	for _, candidate := range []string{
		opts.ImageSize,
		opts.Size,
		settings.String("image_size"),
		settings.String("size"),
	} {
		if candidate != "" {
			return thumbnails.ParseSize(candidate)
		}
	}
	return thumbnails.Size{}, nil
}

// EditPictureDialogSize returns the "WxH" size of the picture edit dialog.
// The height grows with a caption textarea and with a sizes selector.
func (h *Helper) EditPictureDialogSize(content *elements.Content) string {
	return dialogSize(mergeSettings(content, nil))
}

func dialogSize(settings elements.Settings) string {
	height := 255
	switch textarea, sizes := settings.Bool("caption_as_textarea"), settings.Has("sizes"); {
	case textarea && sizes:
		height = 320
	case textarea:
		height = 300
	case sizes:
		height = 290
	}
	return fmt.Sprintf("%dx%d", dialogWidth, height)
}

// mergeSettings lays per-call overrides over the content's own settings.
func mergeSettings(content *elements.Content, overrides map[string]any) elements.Settings {
	var settings elements.Settings
	if content != nil {
		settings = content.Settings
	}
	if len(overrides) == 0 {
		return settings
	}
	merged := settings.Clone()
	if merged == nil {
		merged = elements.Settings{}
	}
	for key, value := range overrides {
		merged[key] = value
	}
	return merged
}

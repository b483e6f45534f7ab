package editor

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-cms-editor/internal/elements"
	"github.com/goliatone/go-cms-editor/internal/essences"
	"github.com/goliatone/go-cms-editor/internal/logging"
)

// EditorOptions tweak a single essence editor.
type EditorOptions struct {
	// Label replaces the humanized content name.
	Label string
	// Class is appended to the wrapper's class list.
	Class string
	// Settings override the content's own settings for this call.
	Settings map[string]any
}

type essenceView struct {
	Content           *elements.Content
	Essence           essences.Essence
	Label             string
	Class             string
	Preview           template.HTML
	Thumbnail         template.HTML
	CaptionAsTextarea bool
	EditURL           string
	DialogSize        string
}

func (v essenceView) ContentID() string {
	return v.Content.ID.String()
}

func (v essenceView) DOMID() string {
	return "essence_" + string(v.Content.Kind) + "_" + v.Content.ID.String()
}

func (v essenceView) FieldID() string {
	return "contents_" + v.Content.ID.String() + "_" + v.Content.Name
}

func (v essenceView) FieldName(attribute string) string {
	return FieldName(v.Content.ID, attribute)
}

// FieldName is the form field carrying attribute of the essence stored on
// the content with contentID.
func FieldName(contentID uuid.UUID, attribute string) string {
	return fmt.Sprintf("contents[%s][%s]", contentID, attribute)
}

// RenderEssenceEditor renders the form editor for content's essence.
func (h *Helper) RenderEssenceEditor(ctx context.Context, content *elements.Content, opts EditorOptions) (template.HTML, error) {
	if content == nil {
		return "", fmt.Errorf("%w: nil content", ErrNoPartial)
	}
	essence := content.Essence
	if essence == nil {
		empty, err := essences.New(content.Kind)
		if err != nil {
			return "", err
		}
		essence = empty
	}

	view := essenceView{
		Content: content,
		Essence: essence,
		Label:   opts.Label,
		Class:   strings.TrimSpace(opts.Class),
	}
	if view.Label == "" {
		view.Label = humanize(content.Name)
	}

	switch e := essence.(type) {
	case *essences.Richtext:
		rendered, err := e.Rendered()
		if err != nil {
			return "", err
		}
		view.Preview = template.HTML(rendered)
	case *essences.Picture:
		if h.thumbnails != nil {
			thumbnail, err := h.EssencePictureThumbnail(ctx, content, ThumbnailOptions{Settings: opts.Settings})
			if err != nil {
				return "", err
			}
			view.Thumbnail = thumbnail
		}
		settings := mergeSettings(content, opts.Settings)
		view.CaptionAsTextarea = settings.Bool("caption_as_textarea")
		view.DialogSize = dialogSize(settings)
		view.EditURL = h.adminURL(editPictureRoute, map[string]any{"content_id": content.ID.String()}, nil)
	}

	logging.WithEditorContext(h.logger, "", content.Name).Debug("editor.render", "kind", essence.Kind())
	out, err := h.render(essence.Partial(), view)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrNoPartial, essence.Partial(), err)
	}
	return out, nil
}

// RenderEssenceEditorByName renders the editor for the content called name on
// element. A missing element or content renders an inline warning instead.
func (h *Helper) RenderEssenceEditorByName(ctx context.Context, element *elements.Element, name string, opts EditorOptions) (template.HTML, error) {
	if element == nil {
		h.logger.Warn("editor.element_missing", "content", name)
		return h.render("element_missing", nil)
	}
	content := element.ContentByName(name)
	if content == nil {
		logging.WithEditorContext(h.logger, element.Name, name).Warn("editor.content_missing", "element_id", element.ID)
		return h.render("content_missing", struct {
			Name      string
			CreateURL string
		}{
			Name: name,
			CreateURL: h.adminURL(newContentRoute,
				map[string]any{"element_id": element.ID.String()},
				map[string]string{"name": name},
			),
		})
	}
	return h.RenderEssenceEditor(ctx, content, opts)
}

func humanize(name string) string {
	words := strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(name))
	if len(words) == 0 {
		return ""
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ")
}

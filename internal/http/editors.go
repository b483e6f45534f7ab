package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	essencescmd "github.com/goliatone/go-cms-editor/internal/commands/essences"
	"github.com/goliatone/go-cms-editor/internal/editor"
	"github.com/goliatone/go-cms-editor/internal/elements"
	"github.com/goliatone/go-cms-editor/internal/essences"
	"github.com/goliatone/go-cms-editor/internal/logging"
)

const maxFormMemory = 1 << 20

var errInvalidField = errors.New("http: invalid form field")

func (api *AdminAPI) registerEditorRoutes(mux *http.ServeMux, base string) {
	elementsRoot := joinPath(base, "elements")
	contentsRoot := joinPath(base, "contents")
	mux.HandleFunc("GET "+elementsRoot+"/{element_id}/contents/{name}/editor", api.handleEssenceEditor)
	mux.HandleFunc("POST "+elementsRoot+"/{element_id}/contents/new", api.handleContentCreate)
	mux.HandleFunc("POST "+contentsRoot+"/{content_id}", api.handleEssenceUpdate)
}

func (api *AdminAPI) handleEssenceEditor(w http.ResponseWriter, r *http.Request) {
	if api.helper == nil || api.elements == nil {
		unavailable(w)
		return
	}
	elementID, err := parseUUID(r.PathValue("element_id"))
	if err != nil {
		badRequest(w, "invalid element id")
		return
	}
	name := strings.TrimSpace(r.PathValue("name"))

	status := http.StatusOK
	element, err := api.elements.Get(r.Context(), elementID)
	if err != nil {
		if !elements.IsNotFound(err) {
			writeError(w, err)
			return
		}
		status = http.StatusNotFound
		element = nil
	}

	fragment, err := api.helper.RenderEssenceEditorByName(r.Context(), element, name, editorOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	if element != nil && element.ContentByName(name) == nil {
		status = http.StatusNotFound
	}
	writeHTML(w, status, fragment)
}

func (api *AdminAPI) handleContentCreate(w http.ResponseWriter, r *http.Request) {
	if api.helper == nil || api.createContent == nil {
		unavailable(w)
		return
	}
	elementID, err := parseUUID(r.PathValue("element_id"))
	if err != nil {
		badRequest(w, "invalid element id")
		return
	}
	if err := r.ParseForm(); err != nil {
		badRequest(w, "invalid form")
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))

	cmd := essencescmd.CreateContentCommand{ElementID: elementID, Name: name}
	if err := api.createContent.Execute(r.Context(), cmd); err != nil {
		writeError(w, err)
		return
	}
	element, err := api.elements.Get(r.Context(), elementID)
	if err != nil {
		writeError(w, err)
		return
	}
	fragment, err := api.helper.RenderEssenceEditorByName(r.Context(), element, name, editorOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	logging.WithEditorContext(api.logger, element.Name, name).Info("http.content_created", "element_id", elementID)
	writeHTML(w, http.StatusCreated, fragment)
}

func (api *AdminAPI) handleEssenceUpdate(w http.ResponseWriter, r *http.Request) {
	if api.helper == nil || api.elements == nil || api.updateText == nil {
		unavailable(w)
		return
	}
	contentID, err := parseUUID(r.PathValue("content_id"))
	if err != nil {
		badRequest(w, "invalid content id")
		return
	}
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		badRequest(w, "invalid form")
		return
	}
	content, err := api.elements.GetContent(r.Context(), contentID)
	if err != nil {
		writeError(w, err)
		return
	}

	form := essenceForm{request: r, contentID: contentID}
	if err := api.applyEssenceForm(r.Context(), content, form); err != nil {
		writeError(w, err)
		return
	}

	updated, err := api.elements.GetContent(r.Context(), contentID)
	if err != nil {
		writeError(w, err)
		return
	}
	fragment, err := api.helper.RenderEssenceEditor(r.Context(), updated, editorOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	logging.WithEditorContext(api.logger, "", updated.Name).Debug("http.essence_updated", "content_id", contentID, "kind", updated.Kind)
	writeHTML(w, http.StatusOK, fragment)
}

// applyEssenceForm dispatches the posted fields to the command matching the
// content's essence kind. Attributes missing from the form keep their stored
// value.
func (api *AdminAPI) applyEssenceForm(ctx context.Context, content *elements.Content, form essenceForm) error {
	switch content.Kind {
	case essences.KindText:
		current, _ := content.Essence.(*essences.Text)
		if current == nil {
			current = &essences.Text{}
		}
		return api.updateText.Execute(ctx, essencescmd.UpdateTextCommand{
			ContentID:  content.ID,
			Body:       form.value("body", current.Body),
			Link:       form.value("link", current.Link),
			LinkTitle:  form.value("link_title", current.LinkTitle),
			LinkTarget: form.value("link_target", current.LinkTarget),
		})
	case essences.KindRichtext:
		current, _ := content.Essence.(*essences.Richtext)
		if current == nil {
			current = &essences.Richtext{}
		}
		return api.updateRichtext.Execute(ctx, essencescmd.UpdateRichtextCommand{
			ContentID: content.ID,
			Body:      form.value("body", current.Body),
		})
	case essences.KindBoolean:
		return api.setBoolean.Execute(ctx, essencescmd.SetBooleanCommand{
			ContentID: content.ID,
			Value:     parseBoolQuery(form.last("value"), false),
		})
	case essences.KindPicture:
		if api.assignPicture == nil {
			return editor.ErrNotPicture
		}
		current := content.PictureEssence()
		if current == nil {
			current = &essences.Picture{}
		}
		cmd := essencescmd.AssignPictureCommand{
			ContentID: content.ID,
			PictureID: current.PictureID,
			Caption:   form.value("caption", current.Caption),
			Title:     form.value("title", current.Title),
			AltTag:    form.value("alt_tag", current.AltTag),
			CropFrom:  form.value("crop_from", current.CropFrom),
			CropSize:  form.value("crop_size", current.CropSize),
		}
		if raw := strings.TrimSpace(form.value("picture_id", "")); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return fmt.Errorf("%w: picture_id", errInvalidField)
			}
			cmd.PictureID = &id
		}
		return api.assignPicture.Execute(ctx, cmd)
	default:
		return essences.ErrUnknownKind
	}
}

// essenceForm reads the contents[<id>][<attribute>] fields rendered by the
// essence editors.
type essenceForm struct {
	request   *http.Request
	contentID uuid.UUID
}

func (f essenceForm) value(attribute, fallback string) string {
	values, ok := f.request.Form[editor.FieldName(f.contentID, attribute)]
	if !ok || len(values) == 0 {
		return fallback
	}
	return values[0]
}

// last returns the final value of a repeated field, as posted by a checkbox
// that follows its hidden fallback.
func (f essenceForm) last(attribute string) string {
	values := f.request.Form[editor.FieldName(f.contentID, attribute)]
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

func editorOptions(r *http.Request) editor.EditorOptions {
	query := r.URL.Query()
	return editor.EditorOptions{
		Label: strings.TrimSpace(query.Get("label")),
		Class: strings.TrimSpace(query.Get("class")),
	}
}

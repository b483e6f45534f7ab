package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-cms-editor/internal/editor"
	"github.com/goliatone/go-cms-editor/internal/thumbnails"
	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

// renditionResponse describes the thumbnail a signed URL stands for. Image
// processing is left to the host; it receives the resolved parameters.
type renditionResponse struct {
	PictureID    string `json:"picture_id"`
	FileUID      string `json:"file_uid,omitempty"`
	Name         string `json:"name"`
	Format       string `json:"format"`
	Size         string `json:"size"`
	Crop         bool   `json:"crop"`
	CropFrom     string `json:"crop_from,omitempty"`
	CropSize     string `json:"crop_size,omitempty"`
	Upsample     bool   `json:"upsample"`
	SourceWidth  int    `json:"source_width"`
	SourceHeight int    `json:"source_height"`
}

type pictureDialogResponse struct {
	ContentID  string `json:"content_id"`
	DialogSize string `json:"dialog_size"`
	Thumbnail  string `json:"thumbnail,omitempty"`
}

func (api *AdminAPI) registerPictureRoutes(mux *http.ServeMux, base string) {
	mux.HandleFunc("GET "+joinPath(base, "pictures")+"/{id}/thumbnails/{size}/{name}", api.handleThumbnail)
	mux.HandleFunc("GET "+joinPath(base, "contents")+"/{content_id}/picture/edit", api.handlePictureDialog)
}

func (api *AdminAPI) handleThumbnail(w http.ResponseWriter, r *http.Request) {
	if api.pictures == nil || len(api.secret) == 0 {
		unavailable(w)
		return
	}
	pictureID, err := parseUUID(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid picture id")
		return
	}
	size, err := thumbnails.ParseSize(r.PathValue("size"))
	if err != nil {
		writeError(w, err)
		return
	}

	query := r.URL.Query()
	req := interfaces.ThumbnailRequest{
		PictureID: pictureID,
		Size:      size.String(),
		Crop:      query.Get("crop") == "1",
		CropFrom:  query.Get("crop_from"),
		CropSize:  query.Get("crop_size"),
		Upsample:  query.Get("upsample") == "1",
	}
	if err := thumbnails.Verify(api.secret, req, query.Get("sh")); err != nil {
		api.logger.Warn("http.thumbnail_rejected", "picture_id", pictureID, "size", req.Size)
		writeError(w, err)
		return
	}

	picture, err := api.pictures.Get(r.Context(), pictureID)
	if err != nil {
		writeError(w, err)
		return
	}
	name, format, _ := strings.Cut(r.PathValue("name"), ".")
	if format == "" {
		format = picture.Format()
	}
	writeJSON(w, http.StatusOK, renditionResponse{
		PictureID:    picture.ID.String(),
		FileUID:      picture.ImageFileUID,
		Name:         name,
		Format:       format,
		Size:         req.Size,
		Crop:         req.Crop,
		CropFrom:     req.CropFrom,
		CropSize:     req.CropSize,
		Upsample:     req.Upsample,
		SourceWidth:  picture.ImageFileWidth,
		SourceHeight: picture.ImageFileHeight,
	})
}

func (api *AdminAPI) handlePictureDialog(w http.ResponseWriter, r *http.Request) {
	if api.helper == nil || api.elements == nil {
		unavailable(w)
		return
	}
	contentID, err := parseUUID(r.PathValue("content_id"))
	if err != nil {
		badRequest(w, "invalid content id")
		return
	}
	content, err := api.elements.GetContent(r.Context(), contentID)
	if err != nil {
		writeError(w, err)
		return
	}
	if content.PictureEssence() == nil {
		writeError(w, editor.ErrNotPicture)
		return
	}
	thumbnail, err := api.helper.EssencePictureThumbnail(r.Context(), content, editor.ThumbnailOptions{})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pictureDialogResponse{
		ContentID:  content.ID.String(),
		DialogSize: api.helper.EditPictureDialogSize(content),
		Thumbnail:  string(thumbnail),
	})
}

package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-cms-editor/internal/editor"
)

func (api *AdminAPI) registerPageRoutes(mux *http.ServeMux, base string) {
	mux.HandleFunc("GET "+joinPath(base, "pages")+"/options", api.handlePageOptions)
}

// handlePageOptions renders the <option> list of the current language's page
// tree, for link pickers that fill a <select> asynchronously.
func (api *AdminAPI) handlePageOptions(w http.ResponseWriter, r *http.Request) {
	if api.helper == nil {
		unavailable(w)
		return
	}
	query := r.URL.Query()
	fragment, err := api.helper.PagesForSelect(r.Context(), nil, editor.SelectOptions{
		Selected:  strings.TrimSpace(query.Get("selected")),
		Prompt:    strings.TrimSpace(query.Get("prompt")),
		Attribute: strings.TrimSpace(query.Get("attribute")),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeHTML(w, http.StatusOK, fragment)
}

package http

import (
	"net/http"
	"strings"
)

type languageSwitchResponse struct {
	LanguageID string `json:"language_id"`
	Code       string `json:"code"`
}

func (api *AdminAPI) registerLanguageRoutes(mux *http.ServeMux, base string) {
	mux.HandleFunc("POST "+joinPath(base, "languages")+"/{code}/switch", api.handleLanguageSwitch)
}

func (api *AdminAPI) handleLanguageSwitch(w http.ResponseWriter, r *http.Request) {
	if api.languages == nil || api.sessions == nil {
		unavailable(w)
		return
	}
	language, err := api.languages.GetByCode(r.Context(), strings.TrimSpace(r.PathValue("code")))
	if err != nil {
		writeError(w, err)
		return
	}
	if err := api.sessions.SetLanguage(w, r, language.ID); err != nil {
		writeError(w, err)
		return
	}
	api.logger.Info("http.language_switched", "language", language.Code)
	writeJSON(w, http.StatusOK, languageSwitchResponse{
		LanguageID: language.ID.String(),
		Code:       language.Code,
	})
}

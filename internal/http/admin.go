package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-cms-editor/internal/commands"
	essencescmd "github.com/goliatone/go-cms-editor/internal/commands/essences"
	"github.com/goliatone/go-cms-editor/internal/editor"
	"github.com/goliatone/go-cms-editor/internal/elements"
	"github.com/goliatone/go-cms-editor/internal/languages"
	"github.com/goliatone/go-cms-editor/internal/logging"
	"github.com/goliatone/go-cms-editor/internal/pictures"
	"github.com/goliatone/go-cms-editor/internal/session"
	"github.com/goliatone/go-cms-editor/internal/thumbnails"
	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

// AdminAPI serves the editor fragments and the endpoints they link to.
type AdminAPI struct {
	basePath  string
	helper    *editor.Helper
	elements  elements.Service
	pictures  pictures.Service
	languages languages.Service
	sessions  *session.Store
	secret    []byte
	frame     thumbnails.Size
	logger    interfaces.Logger
	provider  interfaces.LoggerProvider

	updateText     *commands.Handler[essencescmd.UpdateTextCommand]
	updateRichtext *commands.Handler[essencescmd.UpdateRichtextCommand]
	setBoolean     *commands.Handler[essencescmd.SetBooleanCommand]
	assignPicture  *commands.Handler[essencescmd.AssignPictureCommand]
	createContent  *commands.Handler[essencescmd.CreateContentCommand]
}

// AdminOption mutates the AdminAPI configuration.
type AdminOption func(*AdminAPI)

// NewAdminAPI constructs an AdminAPI instance.
func NewAdminAPI(opts ...AdminOption) *AdminAPI {
	api := &AdminAPI{
		basePath: "/admin",
		frame:    thumbnails.Size{Width: 111, Height: 93},
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base path (defaults to "/admin").
func WithBasePath(path string) AdminOption {
	return func(api *AdminAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithHelper wires the helper rendering the editor fragments.
func WithHelper(helper *editor.Helper) AdminOption {
	return func(api *AdminAPI) {
		api.helper = helper
	}
}

// WithElementService wires the element service.
func WithElementService(service elements.Service) AdminOption {
	return func(api *AdminAPI) {
		api.elements = service
	}
}

// WithPictureService wires the picture service.
func WithPictureService(service pictures.Service) AdminOption {
	return func(api *AdminAPI) {
		api.pictures = service
	}
}

// WithLanguageService wires the language service used by the language switch.
func WithLanguageService(service languages.Service) AdminOption {
	return func(api *AdminAPI) {
		api.languages = service
	}
}

// WithSessionStore wires the session store holding the current language.
func WithSessionStore(store *session.Store) AdminOption {
	return func(api *AdminAPI) {
		api.sessions = store
	}
}

// WithThumbnails sets the secret thumbnail URLs are signed with and the
// editor frame they are fitted into.
func WithThumbnails(secret string, frameWidth, frameHeight int) AdminOption {
	return func(api *AdminAPI) {
		api.secret = []byte(secret)
		if frameWidth > 0 && frameHeight > 0 {
			api.frame = thumbnails.Size{Width: frameWidth, Height: frameHeight}
		}
	}
}

// WithLoggerProvider sets the provider the API and its command handlers
// derive their loggers from.
func WithLoggerProvider(provider interfaces.LoggerProvider) AdminOption {
	return func(api *AdminAPI) {
		api.provider = provider
		api.logger = logging.HTTPLogger(provider)
	}
}

// Register attaches the admin endpoints to the provided mux.
func (api *AdminAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: admin api is nil")
	}
	api.buildCommands()

	base := joinPath(api.basePath, "")

	api.registerEditorRoutes(mux, base)
	api.registerPictureRoutes(mux, base)
	api.registerPageRoutes(mux, base)
	api.registerLanguageRoutes(mux, base)

	return nil
}

// Handler returns a mux with the admin endpoints registered, wrapped in the
// session middleware when a session store is configured.
func (api *AdminAPI) Handler() (http.Handler, error) {
	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		return nil, err
	}
	if api.sessions == nil {
		return mux, nil
	}
	return api.sessions.Middleware(mux), nil
}

func (api *AdminAPI) buildCommands() {
	if api.elements == nil {
		return
	}
	logger := commands.CommandLogger(api.provider, "essences")
	api.updateText = essencescmd.NewUpdateTextHandler(api.elements, logger)
	api.updateRichtext = essencescmd.NewUpdateRichtextHandler(api.elements, logger)
	api.setBoolean = essencescmd.NewSetBooleanHandler(api.elements, logger)
	api.createContent = essencescmd.NewCreateContentHandler(api.elements, logger)
	if api.pictures != nil {
		api.assignPicture = essencescmd.NewAssignPictureHandler(api.elements, api.pictures, logger)
	}
}

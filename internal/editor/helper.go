package editor

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-cms-editor/internal/logging"
	"github.com/goliatone/go-cms-editor/internal/pages"
	"github.com/goliatone/go-cms-editor/internal/routes"
	"github.com/goliatone/go-cms-editor/internal/thumbnails"
	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

//go:embed templates/*.html
var templateFS embed.FS

var partials = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	DefaultPrompt      = "Choose page"
	DefaultIndent      = "&nbsp;&nbsp;"
	DefaultAdminGroup  = "admin"
	DefaultSize        = "111x93"
	newContentRoute    = "new_content"
	editPictureRoute   = "edit_picture"
	dialogWidth        = 380
	defaultFrameWidth  = 111
	defaultFrameHeight = 93
)

var (
	ErrPagesUnavailable = errors.New("editor: page listing not configured")
	ErrUnknownAttribute = errors.New("editor: unknown page attribute")
	ErrNotPicture       = errors.New("editor: content does not hold a picture essence")
	ErrNoPartial        = errors.New("editor: no editor partial for essence")
)

// PageLister lists the page tree of a language ordered by tree position.
type PageLister interface {
	ListByLanguage(ctx context.Context, languageID uuid.UUID, opts pages.ListOptions) ([]*pages.Page, error)
}

// Helper renders the admin editor fragments. It is safe for concurrent use
// once constructed.
type Helper struct {
	pages      PageLister
	languages  interfaces.LanguageResolver
	thumbnails interfaces.ThumbnailURLBuilder
	routes     *routes.Resolver
	adminGroup string
	frame      thumbnails.Size
	prompt     string
	indent     template.HTML
	logger     interfaces.Logger
}

type Option func(*Helper)

// WithPages supplies the page tree used when PagesForSelect is called
// without an explicit list.
func WithPages(lister PageLister, resolver interfaces.LanguageResolver) Option {
	return func(h *Helper) {
		h.pages = lister
		h.languages = resolver
	}
}

func WithThumbnailURLBuilder(builder interfaces.ThumbnailURLBuilder) Option {
	return func(h *Helper) {
		if builder != nil {
			h.thumbnails = builder
		}
	}
}

// WithRoutes enables admin links for missing contents and picture editing.
func WithRoutes(resolver *routes.Resolver, group string) Option {
	return func(h *Helper) {
		h.routes = resolver
		if strings.TrimSpace(group) != "" {
			h.adminGroup = group
		}
	}
}

// WithFrame sets the box editor thumbnails are fitted into.
func WithFrame(width, height int) Option {
	return func(h *Helper) {
		if width > 0 && height > 0 {
			h.frame = thumbnails.Size{Width: width, Height: height}
		}
	}
}

func WithPrompt(prompt string) Option {
	return func(h *Helper) {
		if prompt != "" {
			h.prompt = prompt
		}
	}
}

// WithIndent sets the markup repeated once per depth level in page options.
func WithIndent(indent string) Option {
	return func(h *Helper) {
		h.indent = template.HTML(indent)
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(h *Helper) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// New constructs a helper.
func New(opts ...Option) *Helper {
	h := &Helper{
		adminGroup: DefaultAdminGroup,
		frame:      thumbnails.Size{Width: defaultFrameWidth, Height: defaultFrameHeight},
		prompt:     DefaultPrompt,
		indent:     DefaultIndent,
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Helper) render(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := partials.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func (h *Helper) adminURL(route string, params map[string]any, query map[string]string) string {
	if h.routes == nil {
		return ""
	}
	url, err := h.routes.URL(h.adminGroup, route, params, query)
	if err != nil {
		h.logger.Warn("editor.route_failed", "route", route, "error", err)
		return ""
	}
	return url
}

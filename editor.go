package cmseditor

import (
	"context"
	"errors"
	"html/template"
	"net/http"

	"github.com/goliatone/go-cms-editor/internal/di"
	"github.com/goliatone/go-cms-editor/internal/editor"
	"github.com/goliatone/go-cms-editor/internal/elements"
	"github.com/goliatone/go-cms-editor/internal/languages"
	"github.com/goliatone/go-cms-editor/internal/logging"
	"github.com/goliatone/go-cms-editor/internal/pages"
	"github.com/goliatone/go-cms-editor/internal/pictures"
	"github.com/goliatone/go-cms-editor/internal/seed"
)

// ErrAdminHTTPDisabled is returned by AdminHandler when Features.AdminHTTP is
// off.
var ErrAdminHTTPDisabled = errors.New("cmseditor: admin http feature is disabled")

// LanguageService exports the languages service contract.
type LanguageService = languages.Service

// PageService exports the page tree service contract.
type PageService = pages.Service

// PictureService exports the picture library contract.
type PictureService = pictures.Service

// ElementService exports the element and content service contract.
type ElementService = elements.Service

// Helper exports the admin view helper.
type Helper = *editor.Helper

type (
	EditorOptions    = editor.EditorOptions
	SelectOptions    = editor.SelectOptions
	ThumbnailOptions = editor.ThumbnailOptions
	Element          = elements.Element
	Content          = elements.Content
	Page             = pages.Page
	PageListOptions  = pages.ListOptions
	SeedResult       = seed.Result
)

// Module represents the top level editor runtime façade.
type Module struct {
	container *di.Container
}

// New constructs an editor module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Close releases resources the module opened itself.
func (m *Module) Close() error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Close()
}

func (m *Module) Languages() LanguageService {
	return m.container.LanguageService()
}

func (m *Module) Pages() PageService {
	return m.container.PageService()
}

func (m *Module) Pictures() PictureService {
	return m.container.PictureService()
}

func (m *Module) Elements() ElementService {
	return m.container.ElementService()
}

// Helper returns the view helper rendering editor fragments.
func (m *Module) Helper() Helper {
	return m.container.Helper()
}

// RenderEssenceEditor renders the editor for a content, or the missing
// content notice when content is nil.
func (m *Module) RenderEssenceEditor(ctx context.Context, content *Content, opts EditorOptions) (template.HTML, error) {
	return m.container.Helper().RenderEssenceEditor(ctx, content, opts)
}

// RenderEssenceEditorByName looks the content up on element by name first.
func (m *Module) RenderEssenceEditorByName(ctx context.Context, element *Element, name string, opts EditorOptions) (template.HTML, error) {
	return m.container.Helper().RenderEssenceEditorByName(ctx, element, name, opts)
}

// PagesForSelect renders page options. A nil list uses the current
// language's tree.
func (m *Module) PagesForSelect(ctx context.Context, list []*Page, opts SelectOptions) (template.HTML, error) {
	return m.container.Helper().PagesForSelect(ctx, list, opts)
}

// EssencePictureThumbnail renders the admin thumbnail of a picture content.
func (m *Module) EssencePictureThumbnail(ctx context.Context, content *Content, opts ThumbnailOptions) (template.HTML, error) {
	return m.container.Helper().EssencePictureThumbnail(ctx, content, opts)
}

// EditPictureDialogSize returns the "WxH" size of the picture edit dialog.
func (m *Module) EditPictureDialogSize(content *Content) string {
	return m.container.Helper().EditPictureDialogSize(content)
}

// AdminHandler returns the admin HTTP handler with the language session
// middleware applied.
func (m *Module) AdminHandler() (http.Handler, error) {
	api := m.container.AdminAPI()
	if api == nil {
		return nil, ErrAdminHTTPDisabled
	}
	return api.Handler()
}

// Seed applies the YAML fixture at path through the module services.
func (m *Module) Seed(ctx context.Context, path string) (SeedResult, error) {
	return seed.LoadFile(ctx, path, seed.Services{
		Languages: m.container.LanguageService(),
		Pages:     m.container.PageService(),
		Pictures:  m.container.PictureService(),
		Elements:  m.container.ElementService(),
		Logger:    logging.SeedLogger(m.container.LoggerProvider()),
	})
}

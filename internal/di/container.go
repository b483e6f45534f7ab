package di

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-cms-editor/internal/editor"
	"github.com/goliatone/go-cms-editor/internal/elements"
	adminhttp "github.com/goliatone/go-cms-editor/internal/http"
	"github.com/goliatone/go-cms-editor/internal/languages"
	"github.com/goliatone/go-cms-editor/internal/logging"
	"github.com/goliatone/go-cms-editor/internal/logging/gologger"
	"github.com/goliatone/go-cms-editor/internal/pages"
	"github.com/goliatone/go-cms-editor/internal/pictures"
	"github.com/goliatone/go-cms-editor/internal/routes"
	"github.com/goliatone/go-cms-editor/internal/runtimeconfig"
	"github.com/goliatone/go-cms-editor/internal/session"
	"github.com/goliatone/go-cms-editor/internal/storage"
	"github.com/goliatone/go-cms-editor/internal/thumbnails"
	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

// Container wires module dependencies from a runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logger         interfaces.Logger

	bunDB         *bun.DB
	ownsDB        bool
	cacheService  cache.CacheService
	keySerializer cache.KeySerializer

	registry *elements.Registry
	routes   *routes.Resolver

	languageRepo languages.LanguageRepository
	pageRepo     pages.PageRepository
	pictureRepo  pictures.PictureRepository
	elementRepo  elements.ElementRepository

	languageSvc languages.Service
	pageSvc     pages.Service
	pictureSvc  pictures.Service
	elementSvc  elements.Service

	thumbnails *thumbnails.URLBuilder
	helper     *editor.Helper
	sessions   *session.Store
	admin      *adminhttp.AdminAPI
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB supplies an open database. The container does not close it.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the cache decorating bun repositories.
func WithCache(service cache.CacheService, serializer cache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the logger provider built from the logging
// configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithDefinitions supplies the element definitions instead of loading them
// from Editor.DefinitionsPath.
func WithDefinitions(registry *elements.Registry) Option {
	return func(c *Container) {
		c.registry = registry
	}
}

// NewContainer validates cfg and builds every service it enables.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	steps := []func() error{
		c.configureLogger,
		c.configureStorage,
		c.configureCache,
		c.configureRepositories,
		c.configureDefinitions,
		c.configureServices,
		c.configureEditor,
		c.configureHTTP,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			c.closeOwned()
			return nil, err
		}
	}

	if err := c.ensureDefaultLanguage(context.Background()); err != nil {
		c.closeOwned()
		return nil, err
	}

	c.logger.Info("container.configured",
		"storage", c.storageProvider(),
		"cache", c.cacheService != nil,
		"definitions", len(c.registry.List()),
		"admin_http", c.admin != nil,
	)
	return c, nil
}

func (c *Container) configureLogger() error {
	if c.loggerProvider == nil && c.Config.Features.Logger {
		provider, err := gologger.NewProvider(c.Config.Logging)
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	}
	c.logger = logging.ModuleLogger(c.loggerProvider, "editor")
	return nil
}

func (c *Container) storageProvider() string {
	if c.bunDB != nil {
		return "bun"
	}
	return "memory"
}

func (c *Container) configureStorage() error {
	if c.bunDB == nil && strings.EqualFold(strings.TrimSpace(c.Config.Storage.Provider), "bun") {
		db, err := storage.Open(c.Config.Storage.Driver, c.Config.Storage.DSN)
		if err != nil {
			return err
		}
		c.bunDB = db
		c.ownsDB = true
	}
	if c.bunDB == nil {
		return nil
	}
	return storage.CreateTables(context.Background(), c.bunDB,
		(*languages.Language)(nil),
		(*pages.Page)(nil),
		(*pictures.Picture)(nil),
		(*elements.Element)(nil),
		(*elements.Content)(nil),
	)
}

func (c *Container) configureCache() error {
	if c.bunDB == nil || !c.Config.Cache.Enabled || c.cacheService != nil {
		return nil
	}
	service, serializer, err := storage.NewCacheService(c.Config.Cache.DefaultTTL)
	if err != nil {
		return fmt.Errorf("di: cache: %w", err)
	}
	c.cacheService = service
	c.keySerializer = serializer
	return nil
}

func (c *Container) configureRepositories() error {
	if c.bunDB == nil {
		c.languageRepo = languages.NewMemoryLanguageRepository()
		c.pageRepo = pages.NewMemoryPageRepository()
		c.pictureRepo = pictures.NewMemoryPictureRepository()
		c.elementRepo = elements.NewMemoryElementRepository()
		return nil
	}
	c.languageRepo = languages.NewBunLanguageRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.pageRepo = pages.NewBunPageRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.pictureRepo = pictures.NewBunPictureRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.elementRepo = elements.NewBunElementRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	return nil
}

func (c *Container) configureDefinitions() error {
	if c.registry != nil {
		return nil
	}
	path := strings.TrimSpace(c.Config.Editor.DefinitionsPath)
	if path == "" {
		c.registry = elements.NewRegistry()
		return nil
	}
	defs, err := elements.LoadDefinitionsFile(path)
	if err != nil {
		return err
	}
	registry, err := elements.NewRegistryFromDefinitions(defs)
	if err != nil {
		return err
	}
	c.registry = registry
	return nil
}

func (c *Container) configureServices() error {
	c.languageSvc = languages.NewService(c.languageRepo)
	c.pageSvc = pages.NewService(c.pageRepo, pages.WithLogger(logging.PagesLogger(c.loggerProvider)))
	c.pictureSvc = pictures.NewService(c.pictureRepo)
	c.elementSvc = elements.NewService(c.elementRepo, c.registry,
		elements.WithPictureLookup(c.pictureSvc),
		elements.WithLogger(logging.ElementsLogger(c.loggerProvider)),
	)
	return nil
}

func (c *Container) configureEditor() error {
	routeConfig := c.Config.Routes
	if routeConfig == nil {
		routeConfig = runtimeconfig.DefaultRoutes()
	}
	c.routes = routes.NewResolverFromConfig(routeConfig)

	thumbCfg := c.Config.Thumbnails
	c.thumbnails = thumbnails.NewURLBuilder(c.routes, thumbCfg.RouteGroup, thumbCfg.Route, thumbCfg.Secret)

	editorCfg := c.Config.Editor
	opts := []editor.Option{
		editor.WithPages(c.pageSvc, c.languageSvc),
		editor.WithThumbnailURLBuilder(c.thumbnails),
		editor.WithRoutes(c.routes, editorCfg.AdminGroup),
		editor.WithFrame(thumbCfg.FrameWidth, thumbCfg.FrameHeight),
		editor.WithPrompt(editorCfg.Prompt),
		editor.WithLogger(logging.EssencesLogger(c.loggerProvider)),
	}
	if editorCfg.Indent != "" {
		opts = append(opts, editor.WithIndent(editorCfg.Indent))
	}
	c.helper = editor.New(opts...)
	return nil
}

func (c *Container) configureHTTP() error {
	if !c.Config.Features.AdminHTTP {
		return nil
	}
	store, err := session.NewStore(c.Config.Session.Name, c.Config.Session.Keys,
		session.WithLogger(logging.HTTPLogger(c.loggerProvider)),
	)
	if err != nil {
		return err
	}
	c.sessions = store

	basePath := "/admin"
	if group, ok := c.routes.GroupPath(c.Config.Editor.AdminGroup); ok {
		basePath = group
	}
	c.admin = adminhttp.NewAdminAPI(
		adminhttp.WithBasePath(basePath),
		adminhttp.WithHelper(c.helper),
		adminhttp.WithElementService(c.elementSvc),
		adminhttp.WithPictureService(c.pictureSvc),
		adminhttp.WithLanguageService(c.languageSvc),
		adminhttp.WithSessionStore(store),
		adminhttp.WithThumbnails(c.Config.Thumbnails.Secret, c.Config.Thumbnails.FrameWidth, c.Config.Thumbnails.FrameHeight),
		adminhttp.WithLoggerProvider(c.loggerProvider),
	)
	return nil
}

// ensureDefaultLanguage creates the configured default language on an empty
// store.
func (c *Container) ensureDefaultLanguage(ctx context.Context) error {
	code := strings.ToLower(strings.TrimSpace(c.Config.DefaultLanguage))
	if _, err := c.languageSvc.GetByCode(ctx, code); err == nil {
		return nil
	} else if !languages.IsNotFound(err) {
		return err
	}
	if _, err := c.languageSvc.Default(ctx); err == nil {
		return nil
	} else if !languages.IsNotFound(err) && !errors.Is(err, languages.ErrNoDefaultLanguage) {
		return err
	}
	name := strings.TrimSpace(c.Config.DefaultLanguageName)
	if name == "" {
		name = code
	}
	language, err := c.languageSvc.Create(ctx, languages.CreateLanguageRequest{Code: code, Name: name, Default: true})
	if err != nil {
		return err
	}
	c.logger.Debug("container.default_language_created", "language", language.Code)
	return nil
}

// Close releases the database when the container opened it.
func (c *Container) Close() error {
	return c.closeOwned()
}

func (c *Container) closeOwned() error {
	if c.bunDB == nil || !c.ownsDB {
		return nil
	}
	err := c.bunDB.Close()
	c.bunDB = nil
	return err
}

func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }
func (c *Container) DB() *bun.DB                               { return c.bunDB }
func (c *Container) Definitions() *elements.Registry           { return c.registry }
func (c *Container) Routes() *routes.Resolver                  { return c.routes }
func (c *Container) LanguageService() languages.Service        { return c.languageSvc }
func (c *Container) PageService() pages.Service                { return c.pageSvc }
func (c *Container) PictureService() pictures.Service          { return c.pictureSvc }
func (c *Container) ElementService() elements.Service          { return c.elementSvc }
func (c *Container) Thumbnails() *thumbnails.URLBuilder        { return c.thumbnails }
func (c *Container) Helper() *editor.Helper                    { return c.helper }
func (c *Container) Sessions() *session.Store                  { return c.sessions }

// AdminAPI returns the admin HTTP adapter, or nil when Features.AdminHTTP is
// off.
func (c *Container) AdminAPI() *adminhttp.AdminAPI { return c.admin }

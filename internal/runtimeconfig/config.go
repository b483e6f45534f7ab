package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

var (
	ErrDefaultLanguageRequired     = errors.New("editor config: default language is required")
	ErrStorageProviderUnknown      = errors.New("editor config: storage provider is invalid")
	ErrStorageDriverUnknown        = errors.New("editor config: storage driver is invalid")
	ErrStorageDSNRequired          = errors.New("editor config: storage dsn is required for bun storage")
	ErrThumbnailFrameInvalid       = errors.New("editor config: thumbnail frame must be positive")
	ErrThumbnailDefaultSizeInvalid = errors.New("editor config: thumbnail default size must be WxH")
	ErrThumbnailRouteRequired      = errors.New("editor config: thumbnail route group and name are required")
	ErrSessionKeysRequired         = errors.New("editor config: session keys are required when admin http is enabled")
	ErrThumbnailSecretRequired     = errors.New("editor config: thumbnail secret is required when admin http is enabled")
	ErrLoggingProviderRequired     = errors.New("editor config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown      = errors.New("editor config: logging provider is invalid")
	ErrLoggingLevelInvalid         = errors.New("editor config: logging level is invalid")
	ErrLoggingFormatInvalid        = errors.New("editor config: logging format is invalid")
)

// Config aggregates the options for the editor module.
type Config struct {
	DefaultLanguage     string
	DefaultLanguageName string
	Storage             StorageConfig
	Cache               CacheConfig
	Thumbnails          ThumbnailConfig
	Routes              *urlkit.Config
	Editor              EditorConfig
	Session             SessionConfig
	Features            Features
	Logging             LoggingConfig
}

// StorageConfig selects the repository backend. Provider "memory" keeps
// everything in process; "bun" opens Driver/DSN through bun.
type StorageConfig struct {
	Provider string
	Driver   string
	DSN      string
}

// CacheConfig controls go-repository-cache decoration of bun repositories.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// ThumbnailConfig describes the editor thumbnail frame and how URLs are
// built for it.
type ThumbnailConfig struct {
	FrameWidth  int
	FrameHeight int
	DefaultSize string
	Secret      string
	RouteGroup  string
	Route       string
}

// EditorConfig captures helper defaults.
type EditorConfig struct {
	Prompt          string
	Indent          string
	DefinitionsPath string
	AdminGroup      string
}

// SessionConfig configures the gorilla session holding the current language.
type SessionConfig struct {
	Name string
	Keys []string
}

// Features toggles optional parts of the module.
type Features struct {
	Logger    bool
	AdminHTTP bool
}

// LoggingConfig captures go-logger options.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the configuration used by the example and tests.
func DefaultConfig() Config {
	return Config{
		DefaultLanguage:     "de",
		DefaultLanguageName: "Deutsch",
		Storage: StorageConfig{
			Provider: "memory",
			Driver:   "sqlite",
		},
		Cache: CacheConfig{
			Enabled:    false,
			DefaultTTL: time.Minute,
		},
		Thumbnails: ThumbnailConfig{
			FrameWidth:  111,
			FrameHeight: 93,
			DefaultSize: "111x93",
			RouteGroup:  "admin",
			Route:       "thumbnail",
		},
		Routes: DefaultRoutes(),
		Editor: EditorConfig{
			Prompt:     "Choose page",
			Indent:     "&nbsp;&nbsp;",
			AdminGroup: "admin",
		},
		Session: SessionConfig{
			Name: "editor_session",
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
	}
}

// DefaultRoutes declares the admin routes the helpers link to.
func DefaultRoutes() *urlkit.Config {
	return &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name: "admin",
				Path: "/admin",
				Paths: map[string]string{
					"thumbnail":     "/pictures/:id/thumbnails/:size/:name",
					"new_content":   "/elements/:element_id/contents/new",
					"edit_picture":  "/contents/:content_id/picture/edit",
					"essence_field": "/contents/:content_id",
				},
			},
		},
	}
}

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.DefaultLanguage) == "" {
		return ErrDefaultLanguageRequired
	}
	switch normalize(cfg.Storage.Provider) {
	case "", "memory":
	case "bun":
		if !isSupportedDriver(normalize(cfg.Storage.Driver)) {
			return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
		}
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, cfg.Storage.Provider)
	}
	if cfg.Thumbnails.FrameWidth <= 0 || cfg.Thumbnails.FrameHeight <= 0 {
		return ErrThumbnailFrameInvalid
	}
	if size := strings.TrimSpace(cfg.Thumbnails.DefaultSize); size != "" && !isSizeString(size) {
		return fmt.Errorf("%w: %s", ErrThumbnailDefaultSizeInvalid, size)
	}
	if strings.TrimSpace(cfg.Thumbnails.RouteGroup) == "" || strings.TrimSpace(cfg.Thumbnails.Route) == "" {
		return ErrThumbnailRouteRequired
	}
	if cfg.Features.AdminHTTP {
		if len(cfg.Session.Keys) == 0 {
			return ErrSessionKeysRequired
		}
		if strings.TrimSpace(cfg.Thumbnails.Secret) == "" {
			return ErrThumbnailSecretRequired
		}
	}
	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if provider != "gologger" {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedDriver(driver string) bool {
	switch driver {
	case "sqlite", "sqlite3", "postgres":
		return true
	default:
		return false
	}
}

func isSizeString(value string) bool {
	w, h, ok := strings.Cut(strings.ToLower(value), "x")
	if !ok || w == "" || h == "" {
		return false
	}
	for _, r := range w + h {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

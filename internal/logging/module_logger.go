package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

const (
	rootModule     = "editor"
	essencesModule = "editor.essences"
	pagesModule    = "editor.pages"
	elementsModule = "editor.elements"
	picturesModule = "editor.pictures"
	httpModule     = "editor.http"
	seedModule     = "editor.seed"
	commandsModule = "editor.commands"
)

// Modules lists the logger names the editor requests from a provider.
// Command handlers log below "editor.commands.<module>".
func Modules() []string {
	return []string{
		rootModule,
		essencesModule,
		pagesModule,
		elementsModule,
		picturesModule,
		httpModule,
		seedModule,
		commandsModule,
	}
}

// ResolveModule maps a module name to the editor logger it addresses.
// Short names are taken relative to the root ("pages" is "editor.pages").
// Names below a known module resolve too; anything else reports false.
func ResolveModule(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}
	if name != rootModule && !strings.HasPrefix(name, rootModule+".") {
		name = rootModule + "." + name
	}
	for _, module := range Modules() {
		if name == module || (module != rootModule && strings.HasPrefix(name, module+".")) {
			return name, true
		}
	}
	return "", false
}

const (
	fieldElement = "element"
	fieldContent = "content"
	fieldPage    = "page_id"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// EssencesLogger returns the logger used by essence editor rendering.
func EssencesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, essencesModule)
}

// PagesLogger returns the logger used by the page tree.
func PagesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pagesModule)
}

// ElementsLogger returns the logger used by element services.
func ElementsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, elementsModule)
}

// PicturesLogger returns the logger used for pictures and thumbnails.
func PicturesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, picturesModule)
}

// HTTPLogger returns the logger used by the admin HTTP handlers.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

func SeedLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, seedModule)
}

// WithEditorContext enriches the logger with the element/content pair an
// editor is being rendered for. Empty values are skipped.
func WithEditorContext(logger interfaces.Logger, element, content string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(element); trimmed != "" {
		fields[fieldElement] = trimmed
	}
	if trimmed := strings.TrimSpace(content); trimmed != "" {
		fields[fieldContent] = trimmed
	}
	return WithFields(logger, fields)
}

// WithPage attaches a page identifier field.
func WithPage(logger interfaces.Logger, pageID string) interfaces.Logger {
	if strings.TrimSpace(pageID) == "" {
		return logger
	}
	return WithFields(logger, map[string]any{fieldPage: pageID})
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}

// Ensure returns logger or a no-op logger when nil.
func Ensure(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return NoOp()
	}
	return logger
}

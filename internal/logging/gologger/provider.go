package gologger

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-cms-editor/internal/logging"
	"github.com/goliatone/go-cms-editor/internal/runtimeconfig"
	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

var (
	ErrUnsupportedFormat = errors.New("logging: unsupported go-logger format")
	ErrUnknownFocus      = errors.New("logging: focus names no editor module")
)

var formats = map[string]glog.Option{
	"":        glog.WithLoggerTypeJSON(),
	"json":    glog.WithLoggerTypeJSON(),
	"console": glog.WithLoggerTypeConsole(),
	"pretty":  glog.WithLoggerTypePretty(),
}

var levels = map[string]string{
	"trace":   glog.Trace,
	"debug":   glog.Debug,
	"info":    glog.Info,
	"warn":    glog.Warn,
	"warning": glog.Warn,
	"error":   glog.Error,
	"fatal":   glog.Fatal,
}

// Provider hands out one go-logger child per editor module. Focus entries
// from the logging config are resolved against logging.Modules, so "pages"
// and "editor.pages" address the same logger.
type Provider struct {
	root  *glog.BaseLogger
	focus []string

	mu       sync.Mutex
	children map[string]interfaces.Logger
}

// NewProvider builds the root go-logger from the editor logging config.
func NewProvider(cfg runtimeconfig.LoggingConfig) (*Provider, error) {
	format, ok := formats[strings.ToLower(strings.TrimSpace(cfg.Format))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, cfg.Format)
	}
	options := []glog.Option{format}
	if level, ok := levels[strings.ToLower(strings.TrimSpace(cfg.Level))]; ok {
		options = append(options, glog.WithLevel(level))
	}
	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}

	focus, err := resolveFocus(cfg.Focus)
	if err != nil {
		return nil, err
	}
	root := glog.NewLogger(options...)
	if len(focus) > 0 {
		root.Focus(focus...)
	}
	return &Provider{
		root:     root,
		focus:    focus,
		children: map[string]interfaces.Logger{},
	}, nil
}

// Focus returns the resolved module names output is narrowed to.
func (p *Provider) Focus() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.focus)
}

// GetLogger returns the child for name, creating it on first use. Blank
// names address the editor root module.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil {
		return logging.NoOp()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "editor"
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if child, ok := p.children[name]; ok {
		return child
	}
	child := wrap(p.root.GetLogger(name))
	p.children[name] = child
	return child
}

func resolveFocus(names []string) ([]string, error) {
	resolved := make([]string, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		module, ok := logging.ResolveModule(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFocus, name)
		}
		if !slices.Contains(resolved, module) {
			resolved = append(resolved, module)
		}
	}
	return resolved, nil
}

func wrap(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return &adapter{inner: inner}
}

// adapter satisfies interfaces.Logger on top of a go-logger Logger.
type adapter struct {
	inner glog.Logger
}

func (l *adapter) Trace(msg string, args ...any) { l.inner.Trace(msg, args...) }
func (l *adapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *adapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *adapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *adapter) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
func (l *adapter) Fatal(msg string, args ...any) { l.inner.Fatal(msg, args...) }

// WithFields prefers go-logger's FieldsLogger and otherwise passes the
// fields as sorted key/value pairs to With.
func (l *adapter) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	switch inner := l.inner.(type) {
	case glog.FieldsLogger:
		return wrap(inner.WithFields(maps.Clone(fields)))
	case interface{ With(...any) *glog.BaseLogger }:
		args := make([]any, 0, len(fields)*2)
		for _, key := range slices.Sorted(maps.Keys(fields)) {
			args = append(args, key, fields[key])
		}
		return wrap(inner.With(args...))
	default:
		return l
	}
}

func (l *adapter) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return wrap(l.inner.WithContext(ctx))
}

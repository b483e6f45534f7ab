package gologger

import (
	"context"
	"errors"
	"testing"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cms-editor/internal/runtimeconfig"
)

func TestNewProviderCachesModuleLoggers(t *testing.T) {
	p, err := NewProvider(runtimeconfig.LoggingConfig{Level: "debug", Format: "console"})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	pages := p.GetLogger("editor.pages")
	if pages == nil {
		t.Fatal("expected logger, got nil")
	}
	if again := p.GetLogger(" editor.pages "); again != pages {
		t.Fatalf("expected the cached editor.pages logger")
	}
	if root := p.GetLogger(""); root != p.GetLogger("editor") {
		t.Fatalf("expected a blank name to address the editor root")
	}
	pages.WithFields(map[string]any{"page_id": "startseite"}).Debug("provider.ready")
}

func TestNewProviderResolvesFocusAgainstEditorModules(t *testing.T) {
	p, err := NewProvider(runtimeconfig.LoggingConfig{
		Focus: []string{"pages", "editor.pages", " Commands.Essences ", ""},
	})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	want := []string{"editor.pages", "editor.commands.essences"}
	if diff := cmp.Diff(want, p.Focus()); diff != "" {
		t.Fatalf("focus mismatch (-want +got):\n%s", diff)
	}
}

func TestNewProviderRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  runtimeconfig.LoggingConfig
		want error
	}{
		{"format", runtimeconfig.LoggingConfig{Format: "xml"}, ErrUnsupportedFormat},
		{"focus", runtimeconfig.LoggingConfig{Focus: []string{"pages", "billing"}}, ErrUnknownFocus},
		{"foreign root", runtimeconfig.LoggingConfig{Focus: []string{"cms.pages"}}, ErrUnknownFocus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewProvider(tt.cfg); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNilProviderFallsBackToNoOp(t *testing.T) {
	var p *Provider
	if logger := p.GetLogger("editor"); logger == nil {
		t.Fatal("expected no-op logger from nil provider")
	}
	if focus := p.Focus(); focus != nil {
		t.Fatalf("expected no focus, got %v", focus)
	}
}

func TestAdapterDelegatesAndClonesFields(t *testing.T) {
	stub := &stubLogger{}
	adapted := wrap(stub)

	adapted.Trace("trace", "key", "value")
	adapted.Debug("debug")
	adapted.Info("info")
	adapted.Warn("warn")
	adapted.Error("error")
	adapted.Fatal("fatal")

	fields := map[string]any{"element": "article"}
	adapted.WithFields(fields)
	fields["element"] = "header"
	if stub.fields[0]["element"] != "article" {
		t.Fatalf("expected fields to be cloned, got %v", stub.fields[0])
	}

	ctx := context.WithValue(context.Background(), struct{}{}, "value")
	adapted.WithContext(ctx)
	if len(stub.contexts) != 1 || stub.contexts[0] != ctx {
		t.Fatalf("expected context propagation, got %#v", stub.contexts)
	}

	want := []string{"trace", "debug", "info", "warn", "error", "fatal"}
	if len(stub.calls) != len(want) {
		t.Fatalf("expected %d calls, got %v", len(want), stub.calls)
	}
	for i := range want {
		if stub.calls[i] != want[i] {
			t.Fatalf("call %d: expected %q, got %q", i, want[i], stub.calls[i])
		}
	}
}

type stubLogger struct {
	calls    []string
	fields   []map[string]any
	contexts []context.Context
}

var _ glog.Logger = (*stubLogger)(nil)
var _ glog.FieldsLogger = (*stubLogger)(nil)

func (s *stubLogger) Trace(string, ...any) { s.calls = append(s.calls, "trace") }
func (s *stubLogger) Debug(string, ...any) { s.calls = append(s.calls, "debug") }
func (s *stubLogger) Info(string, ...any)  { s.calls = append(s.calls, "info") }
func (s *stubLogger) Warn(string, ...any)  { s.calls = append(s.calls, "warn") }
func (s *stubLogger) Error(string, ...any) { s.calls = append(s.calls, "error") }
func (s *stubLogger) Fatal(string, ...any) { s.calls = append(s.calls, "fatal") }

func (s *stubLogger) WithContext(ctx context.Context) glog.Logger {
	s.contexts = append(s.contexts, ctx)
	return s
}

func (s *stubLogger) WithFields(fields map[string]any) glog.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	s.fields = append(s.fields, copied)
	return s
}

package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
	warnings []string
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(msg string, _ ...any) {
	r.warnings = append(r.warnings, msg)
}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "editor.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerAnnotatesModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = PagesLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != pagesModule {
		t.Fatalf("expected module %s, got %v", pagesModule, provider.requested)
	}
	if got := rec.fields[0]["module"]; got != pagesModule {
		t.Fatalf("expected module field %s, got %v", pagesModule, got)
	}
}

func TestModuleLoggerDefaultsToRoot(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
}

func TestWithEditorContextSkipsBlankValues(t *testing.T) {
	rec := &recordingLogger{}

	WithEditorContext(rec, "article", "  ")

	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	if rec.fields[0][fieldElement] != "article" {
		t.Fatalf("expected element field, got %v", rec.fields[0])
	}
	if _, ok := rec.fields[0][fieldContent]; ok {
		t.Fatalf("blank content should be skipped, got %v", rec.fields[0])
	}
}

func TestContextFieldsAreMergedAndCopied(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"request_id": "r-1"})
	ctx = ContextWithFields(ctx, map[string]any{"language": "de"})

	fields := ContextFields(ctx)
	if fields["request_id"] != "r-1" || fields["language"] != "de" {
		t.Fatalf("unexpected merged fields %v", fields)
	}
	fields["request_id"] = "mutated"
	if ContextFields(ctx)["request_id"] != "r-1" {
		t.Fatal("expected ContextFields to return a copy")
	}
}

func TestFromContextAppliesFields(t *testing.T) {
	rec := &recordingLogger{}
	ctx := ContextWithFields(context.Background(), map[string]any{"request_id": "r-2"})

	FromContext(ctx, rec)

	if len(rec.contexts) != 1 {
		t.Fatalf("expected WithContext call, got %d", len(rec.contexts))
	}
	if len(rec.fields) != 1 || rec.fields[0]["request_id"] != "r-2" {
		t.Fatalf("expected context fields applied, got %v", rec.fields)
	}
}

func TestResolveModule(t *testing.T) {
	cases := map[string]string{
		"pages":                     "editor.pages",
		" Editor.HTTP ":             "editor.http",
		"editor":                    "editor",
		"commands.essences":         "editor.commands.essences",
		"editor.pictures.thumbnail": "editor.pictures.thumbnail",
		"billing":                   "",
		"editorial":                 "",
		"":                          "",
	}
	for input, want := range cases {
		got, ok := ResolveModule(input)
		if got != want || ok != (want != "") {
			t.Fatalf("ResolveModule(%q) = %q, %v; want %q", input, got, ok, want)
		}
	}
}

func TestWithFieldsDropsBlankKeys(t *testing.T) {
	rec := &recordingLogger{}
	WithFields(rec, map[string]any{" ": "x", "page_id": "p-1"})
	if len(rec.fields) != 1 || len(rec.fields[0]) != 1 || rec.fields[0]["page_id"] != "p-1" {
		t.Fatalf("expected only page_id to be attached, got %v", rec.fields)
	}
	WithFields(rec, map[string]any{"": "x"})
	if len(rec.fields) != 1 {
		t.Fatalf("expected blank-only fields to be skipped, got %v", rec.fields)
	}
}

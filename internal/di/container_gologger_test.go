package di

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cms-editor/internal/logging/gologger"
	"github.com/goliatone/go-cms-editor/internal/runtimeconfig"
)

func TestContainerFocusesEditorModules(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Level = "debug"
	cfg.Logging.Focus = []string{"pages", "commands.essences"}

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	provider, ok := container.loggerProvider.(*gologger.Provider)
	if !ok {
		t.Fatalf("expected go-logger provider, got %T", container.loggerProvider)
	}
	want := []string{"editor.pages", "editor.commands.essences"}
	if diff := cmp.Diff(want, provider.Focus()); diff != "" {
		t.Fatalf("focus mismatch (-want +got):\n%s", diff)
	}
	if provider.GetLogger("editor.pages") != provider.GetLogger("editor.pages") {
		t.Fatalf("expected page services to share one module logger")
	}
}

func TestContainerRejectsUnknownFocus(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Focus = []string{"billing"}

	if _, err := NewContainer(cfg); !errors.Is(err, gologger.ErrUnknownFocus) {
		t.Fatalf("expected ErrUnknownFocus, got %v", err)
	}
}

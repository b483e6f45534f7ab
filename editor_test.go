package cmseditor_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	cmseditor "github.com/goliatone/go-cms-editor"
	"github.com/goliatone/go-cms-editor/internal/identity"
)

const (
	definitionsPath = "internal/elements/testdata/elements.yml"
	sitePath        = "internal/seed/testdata/site.yml"
)

func newSeededModule(t *testing.T, cfg cmseditor.Config) *cmseditor.Module {
	t.Helper()
	cfg.Editor.DefinitionsPath = definitionsPath
	module, err := cmseditor.New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	t.Cleanup(func() {
		_ = module.Close()
	})
	result, err := module.Seed(context.Background(), sitePath)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	// de is created by the module itself as the default language.
	if result.Languages != 1 || result.Pages != 4 {
		t.Fatalf("unexpected seed result %+v", result)
	}
	return module
}

func document(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	return doc
}

func TestModuleRendersSeededSite(t *testing.T) {
	ctx := context.Background()
	module := newSeededModule(t, cmseditor.DefaultConfig())

	list, err := module.Elements().ListByPage(ctx, identity.PageUUID("de", "startseite"))
	if err != nil || len(list) != 1 {
		t.Fatalf("expected the seeded article, got %d elements err=%v", len(list), err)
	}
	article := list[0]

	headline, err := module.RenderEssenceEditorByName(ctx, article, "headline", cmseditor.EditorOptions{})
	if err != nil {
		t.Fatalf("render headline: %v", err)
	}
	if value, _ := document(t, string(headline)).Find("input[type=text]").First().Attr("value"); value != "Willkommen" {
		t.Fatalf("expected seeded headline in editor, got %s", headline)
	}

	missing, err := module.RenderEssenceEditorByName(ctx, article, "sputz", cmseditor.EditorOptions{})
	if err != nil {
		t.Fatalf("render missing: %v", err)
	}
	if document(t, string(missing)).Find(".content_editor.missing").Length() != 1 {
		t.Fatalf("expected missing content notice, got %s", missing)
	}

	image := article.ContentByName("image")
	thumbnail, err := module.EssencePictureThumbnail(ctx, image, cmseditor.ThumbnailOptions{})
	if err != nil {
		t.Fatalf("thumbnail: %v", err)
	}
	img := document(t, string(thumbnail)).Find("img")
	if img.Length() != 1 {
		t.Fatalf("expected thumbnail image, got %s", thumbnail)
	}
	if alt, _ := img.Attr("alt"); alt != "Portrait" {
		t.Fatalf("expected picture name as alt got %q", alt)
	}
	if got := module.EditPictureDialogSize(image); got != "380x320" {
		t.Fatalf("expected 380x320 got %s", got)
	}

	options, err := module.PagesForSelect(ctx, nil, cmseditor.SelectOptions{})
	if err != nil {
		t.Fatalf("pages for select: %v", err)
	}
	var labels []string
	document(t, string(options)).Find("option").Each(func(_ int, s *goquery.Selection) {
		labels = append(labels, s.Text())
	})
	want := []string{"Choose page", "Startseite", "\u00a0\u00a0Über uns", "\u00a0\u00a0Kontakt"}
	if strings.Join(labels, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected options %q", labels)
	}
}

func TestModuleAdminHandler(t *testing.T) {
	module := newSeededModule(t, cmseditor.DefaultConfig())
	if _, err := module.AdminHandler(); !errors.Is(err, cmseditor.ErrAdminHTTPDisabled) {
		t.Fatalf("expected ErrAdminHTTPDisabled got %v", err)
	}

	cfg := cmseditor.DefaultConfig()
	cfg.Features.AdminHTTP = true
	cfg.Session.Keys = []string{"0123456789abcdef0123456789abcdef"}
	cfg.Thumbnails.Secret = "thumbnail-secret"
	module = newSeededModule(t, cfg)

	handler, err := module.AdminHandler()
	if err != nil {
		t.Fatalf("AdminHandler returned error: %v", err)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/pages/options", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Kontakt") {
		t.Fatalf("expected page tree in options, got %s", rec.Body.String())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*cmseditor.Config)
		want   error
	}{
		{"default language", func(cfg *cmseditor.Config) { cfg.DefaultLanguage = " " }, cmseditor.ErrDefaultLanguageRequired},
		{"storage provider", func(cfg *cmseditor.Config) { cfg.Storage.Provider = "redis" }, cmseditor.ErrStorageProviderUnknown},
		{"bun dsn", func(cfg *cmseditor.Config) { cfg.Storage.Provider = "bun" }, cmseditor.ErrStorageDSNRequired},
		{"frame", func(cfg *cmseditor.Config) { cfg.Thumbnails.FrameWidth = 0 }, cmseditor.ErrThumbnailFrameInvalid},
		{"logging provider", func(cfg *cmseditor.Config) {
			cfg.Features.Logger = true
			cfg.Logging.Provider = "zap"
		}, cmseditor.ErrLoggingProviderUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := cmseditor.DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v got %v", tt.want, err)
			}
			if _, err := cmseditor.New(cfg); !errors.Is(err, tt.want) {
				t.Fatalf("New: expected %v got %v", tt.want, err)
			}
		})
	}
}

package elements_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cms-editor/internal/elements"
	cmsvalidation "github.com/goliatone/go-cms-editor/internal/validation"
	"github.com/goliatone/go-cms-editor/pkg/testsupport"
)

func TestLoadDefinitionsFile(t *testing.T) {
	defs, err := elements.LoadDefinitionsFile("testdata/elements.yml")
	if err != nil {
		t.Fatalf("load definitions: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions got %d", len(defs))
	}
	article := defs[0]
	if article.Name != "article" || len(article.Contents) != 5 {
		t.Fatalf("unexpected article definition %+v", article)
	}
	image, ok := article.Content("image")
	if !ok {
		t.Fatalf("expected image content")
	}
	if !elements.Settings(image.Settings).Bool("caption_as_textarea") {
		t.Fatalf("expected caption_as_textarea setting")
	}
	if got := elements.Settings(image.Settings).Strings("sizes"); len(got) != 2 || got[0] != "100x100" {
		t.Fatalf("unexpected sizes %v", got)
	}
}

func TestParseDefinitionsMatchesFileLoader(t *testing.T) {
	data, err := testsupport.LoadFixture("testdata/elements.yml")
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	parsed, err := elements.ParseDefinitions(data)
	if err != nil {
		t.Fatalf("parse definitions: %v", err)
	}
	loaded, err := elements.LoadDefinitionsFile("testdata/elements.yml")
	if err != nil {
		t.Fatalf("load definitions: %v", err)
	}
	if diff := cmp.Diff(loaded, parsed); diff != "" {
		t.Fatalf("definitions mismatch (-file +parsed):\n%s", diff)
	}
	if _, err := elements.LoadDefinitionsFile("testdata/missing.yml"); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}

func TestParseDefinitionsRejectsSchemaViolations(t *testing.T) {
	_, err := elements.ParseDefinitions([]byte(`
- name: article
  contents:
    - name: intro
`))
	if !errors.Is(err, cmsvalidation.ErrSchemaValidation) {
		t.Fatalf("expected schema validation error got %v", err)
	}
	if issues := cmsvalidation.Issues(err); len(issues) == 0 {
		t.Fatalf("expected issues for missing type")
	}
}

func TestParseDefinitionsRejectsUnknownTypesAndDuplicates(t *testing.T) {
	_, err := elements.ParseDefinitions([]byte(`
- name: gallery
  contents:
    - name: clip
      type: video
`))
	if err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Fatalf("expected unknown kind error got %v", err)
	}

	_, err = elements.ParseDefinitions([]byte(`
- name: gallery
  contents:
    - name: caption
      type: text
    - name: caption
      type: richtext
`))
	if err == nil || !strings.Contains(err.Error(), "duplicate content name") {
		t.Fatalf("expected duplicate content error got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	registry := elements.NewRegistry()
	if err := registry.Register(elements.Definition{Name: "text_block", Contents: []elements.ContentDefinition{{Name: "body", Type: "richtext"}}}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(elements.Definition{Name: "text_block"}); !errors.Is(err, elements.ErrDefinitionExists) {
		t.Fatalf("expected ErrDefinitionExists got %v", err)
	}
	if err := registry.Register(elements.Definition{Name: "  "}); err == nil {
		t.Fatalf("expected blank name to fail")
	}
	if err := registry.Register(elements.Definition{Name: "headline"}); err != nil {
		t.Fatalf("register headline: %v", err)
	}

	if _, ok := registry.Get("text_block"); !ok {
		t.Fatalf("expected text_block to be registered")
	}
	list := registry.List()
	if len(list) != 2 || list[0].Name != "headline" {
		t.Fatalf("expected sorted definitions, got %+v", list)
	}
}

func TestSettings(t *testing.T) {
	settings := elements.Settings{
		"caption_as_textarea": "true",
		"size":                "111x93",
		"sizes":               []any{"100x100"},
		"crop":                nil,
	}
	if !settings.Bool("caption_as_textarea") {
		t.Fatalf("expected string true to be truthy")
	}
	if settings.Has("crop") || settings.Has("missing") {
		t.Fatalf("expected nil and missing keys to be absent")
	}
	if settings.String("size") != "111x93" {
		t.Fatalf("unexpected size %q", settings.String("size"))
	}
	if got := settings.Value("size", map[string]any{"size": "50x50"}); got != "50x50" {
		t.Fatalf("expected override to win, got %v", got)
	}
	if got := settings.Value("size", map[string]any{"crop": true}); got != "111x93" {
		t.Fatalf("expected setting fallback, got %v", got)
	}
	var empty elements.Settings
	if empty.Bool("x") || empty.Strings("x") != nil || empty.Value("x", nil) != nil {
		t.Fatalf("expected nil settings to be empty")
	}
}

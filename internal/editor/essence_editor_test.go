package editor_test

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-cms-editor/internal/editor"
	"github.com/goliatone/go-cms-editor/internal/elements"
	"github.com/goliatone/go-cms-editor/internal/essences"
)

var textInputPattern = regexp.MustCompile(`input.+type="text".+value="hello!`)

func TestRenderEssenceEditorText(t *testing.T) {
	element := articleElement()
	out, err := newHelper().RenderEssenceEditor(context.Background(), element.ContentByName("intro"), editor.EditorOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !textInputPattern.MatchString(string(out)) {
		t.Fatalf("expected text input with value, got %s", out)
	}

	doc := parse(t, out)
	wrapper := doc.Find("div.content_editor.essence_text")
	if wrapper.Length() != 1 {
		t.Fatalf("expected one text editor wrapper, got %s", out)
	}
	if got := strings.TrimSpace(wrapper.Find("label").Text()); got != "Intro" {
		t.Fatalf("expected humanized label Intro got %q", got)
	}
	name, _ := wrapper.Find("input").Attr("name")
	if !strings.HasSuffix(name, "[body]") {
		t.Fatalf("expected body field name got %q", name)
	}
}

func TestRenderEssenceEditorEscapesValues(t *testing.T) {
	content := newContent(uuid.New(), "intro", &essences.Text{Body: `"><script>alert(1)</script>`}, nil)
	out, err := newHelper().RenderEssenceEditor(context.Background(), content, editor.EditorOptions{Label: "Custom"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Fatalf("expected escaped value, got %s", out)
	}
	doc := parse(t, out)
	value, _ := doc.Find("input[type=text]").Attr("value")
	if value != `"><script>alert(1)</script>` {
		t.Fatalf("expected round-tripped value got %q", value)
	}
	if got := strings.TrimSpace(doc.Find("label").Text()); got != "Custom" {
		t.Fatalf("expected label override got %q", got)
	}
}

func TestRenderEssenceEditorOtherKinds(t *testing.T) {
	helper := newHelper()
	element := articleElement()
	ctx := context.Background()

	richtext, err := helper.RenderEssenceEditor(ctx, element.ContentByName("text"), editor.EditorOptions{})
	if err != nil {
		t.Fatalf("render richtext: %v", err)
	}
	doc := parse(t, richtext)
	if got := doc.Find("textarea").Text(); got != "Some *words*" {
		t.Fatalf("expected markdown source in textarea got %q", got)
	}
	if doc.Find(".essence_richtext_preview em").Length() != 1 {
		t.Fatalf("expected rendered preview, got %s", richtext)
	}

	boolean, err := helper.RenderEssenceEditor(ctx, element.ContentByName("show_more"), editor.EditorOptions{})
	if err != nil {
		t.Fatalf("render boolean: %v", err)
	}
	if parse(t, boolean).Find("input[type=checkbox][checked]").Length() != 1 {
		t.Fatalf("expected checked checkbox, got %s", boolean)
	}

	picture, err := helper.RenderEssenceEditor(ctx, element.ContentByName("image"), editor.EditorOptions{})
	if err != nil {
		t.Fatalf("render picture: %v", err)
	}
	doc = parse(t, picture)
	if doc.Find("textarea").Text() != "A caption" {
		t.Fatalf("expected caption textarea, got %s", picture)
	}
	if doc.Find("img").Length() != 0 || doc.Find(".picture_missing").Length() != 1 {
		t.Fatalf("expected missing picture placeholder, got %s", picture)
	}
	if size, _ := doc.Find("a.edit_picture").Attr("data-dialog-size"); size != "380x300" {
		t.Fatalf("expected dialog size 380x300 got %q", size)
	}
}

func TestRenderEssenceEditorByName(t *testing.T) {
	element := articleElement()
	out, err := newHelper().RenderEssenceEditorByName(context.Background(), element, "intro", editor.EditorOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !textInputPattern.MatchString(string(out)) {
		t.Fatalf("expected text input with value, got %s", out)
	}
}

func TestRenderEssenceEditorByNameWithoutElement(t *testing.T) {
	logger := &recordingLogger{}
	out, err := newHelper(editor.WithLogger(logger)).RenderEssenceEditorByName(context.Background(), nil, "intro", editor.EditorOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := parse(t, out)
	if doc.Find(".content_editor_error").Length() != 1 {
		t.Fatalf("expected error marker, got %s", out)
	}
	if !strings.Contains(doc.Text(), "No element given.") {
		t.Fatalf("expected warning text, got %s", out)
	}
	if len(logger.warnings) != 1 {
		t.Fatalf("expected one logged warning got %v", logger.warnings)
	}
}

func TestRenderEssenceEditorByNameMissingContent(t *testing.T) {
	element := articleElement()
	out, err := newHelper().RenderEssenceEditorByName(context.Background(), element, "sputz", editor.EditorOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := parse(t, out)
	if doc.Find(".content_editor.missing").Length() != 1 {
		t.Fatalf("expected missing marker, got %s", out)
	}
	if doc.Find("input[value]").Length() != 0 {
		t.Fatalf("expected no value-bearing input, got %s", out)
	}
	href, ok := doc.Find("a.create_content").Attr("href")
	if !ok || !strings.Contains(href, element.ID.String()) || !strings.Contains(href, "name=sputz") {
		t.Fatalf("expected create link for element, got %q", href)
	}
}

func TestRenderEssenceEditorIsIdempotent(t *testing.T) {
	helper := newHelper()
	element := articleElement()
	ctx := context.Background()
	for _, name := range []string{"intro", "text", "show_more", "image", "missing"} {
		first, err := helper.RenderEssenceEditorByName(ctx, element, name, editor.EditorOptions{})
		if err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
		second, err := helper.RenderEssenceEditorByName(ctx, element, name, editor.EditorOptions{})
		if err != nil {
			t.Fatalf("render %s again: %v", name, err)
		}
		if first != second {
			t.Fatalf("expected identical output for %s", name)
		}
	}
}

func TestRenderEssenceEditorNilContent(t *testing.T) {
	if _, err := newHelper().RenderEssenceEditor(context.Background(), nil, editor.EditorOptions{}); err == nil {
		t.Fatalf("expected error for nil content")
	}
	content := &elements.Content{ID: uuid.New(), Name: "intro", Kind: essences.KindText}
	out, err := newHelper().RenderEssenceEditor(context.Background(), content, editor.EditorOptions{})
	if err != nil {
		t.Fatalf("render empty essence: %v", err)
	}
	if !strings.Contains(string(out), `value=""`) {
		t.Fatalf("expected empty value, got %s", out)
	}
}

func TestRenderEssenceEditorPictureHonorsSettingOverrides(t *testing.T) {
	helper := newHelper()
	ctx := context.Background()
	sizes := []any{"100x100", "200x200"}

	tests := []struct {
		name      string
		content   elements.Settings
		overrides map[string]any
		textarea  bool
		want      string
	}{
		{name: "override enables textarea", content: nil, overrides: map[string]any{"caption_as_textarea": true}, textarea: true, want: "380x300"},
		{name: "override disables textarea", content: elements.Settings{"caption_as_textarea": true}, overrides: map[string]any{"caption_as_textarea": false}, want: "380x255"},
		{name: "override adds sizes", content: elements.Settings{"caption_as_textarea": true}, overrides: map[string]any{"sizes": sizes}, textarea: true, want: "380x320"},
		{name: "content settings only", content: elements.Settings{"sizes": sizes}, want: "380x290"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := pictureContent(400, 300, tt.content)
			out, err := helper.RenderEssenceEditor(ctx, content, editor.EditorOptions{Settings: tt.overrides})
			if err != nil {
				t.Fatalf("render picture: %v", err)
			}
			doc := parse(t, out)
			if got := doc.Find("textarea").Length() == 1; got != tt.textarea {
				t.Fatalf("expected textarea=%v, got %s", tt.textarea, out)
			}
			if size, _ := doc.Find("a.edit_picture").Attr("data-dialog-size"); size != tt.want {
				t.Fatalf("expected dialog size %s got %q", tt.want, size)
			}
		})
	}
}

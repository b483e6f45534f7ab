package editor_test

import (
	"context"
	"html/template"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/goliatone/go-cms-editor/internal/editor"
	"github.com/goliatone/go-cms-editor/internal/elements"
	"github.com/goliatone/go-cms-editor/internal/essences"
	"github.com/goliatone/go-cms-editor/internal/pictures"
	"github.com/goliatone/go-cms-editor/internal/routes"
	"github.com/goliatone/go-cms-editor/internal/runtimeconfig"
	"github.com/goliatone/go-cms-editor/internal/thumbnails"
	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Trace(string, ...any) {}
func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Error(string, ...any) {}
func (l *recordingLogger) Fatal(string, ...any) {}

func (l *recordingLogger) Warn(msg string, _ ...any) {
	l.warnings = append(l.warnings, msg)
}

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger {
	return l
}

func parse(t *testing.T, markup template.HTML) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(markup)))
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	return doc
}

func newHelper(opts ...editor.Option) *editor.Helper {
	resolver := routes.NewResolverFromConfig(runtimeconfig.DefaultRoutes())
	base := []editor.Option{
		editor.WithRoutes(resolver, "admin"),
		editor.WithThumbnailURLBuilder(thumbnails.NewURLBuilder(resolver, "admin", "thumbnail", "secret")),
	}
	return editor.New(append(base, opts...)...)
}

func newContent(elementID uuid.UUID, name string, essence essences.Essence, settings elements.Settings) *elements.Content {
	return &elements.Content{
		ID:        uuid.New(),
		ElementID: elementID,
		Name:      name,
		Kind:      essence.Kind(),
		Essence:   essence,
		Settings:  settings,
	}
}

func articleElement() *elements.Element {
	elementID := uuid.New()
	return &elements.Element{
		ID:     elementID,
		PageID: uuid.New(),
		Name:   "article",
		Contents: []*elements.Content{
			newContent(elementID, "intro", &essences.Text{Body: "hello!"}, nil),
			newContent(elementID, "text", &essences.Richtext{Body: "Some *words*"}, nil),
			newContent(elementID, "show_more", &essences.Boolean{Value: true}, nil),
			newContent(elementID, "image", &essences.Picture{Caption: "A caption"}, elements.Settings{"caption_as_textarea": true}),
		},
	}
}

func pictureContent(width, height int, settings elements.Settings) *elements.Content {
	essence := &essences.Picture{}
	essence.Attach(&pictures.Picture{
		ID:              uuid.New(),
		Name:            "Sample",
		ImageFileName:   "sample.png",
		ImageFileWidth:  width,
		ImageFileHeight: height,
	})
	return newContent(uuid.New(), "image", essence, settings)
}

package essences

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Richtext holds Markdown source.
type Richtext struct {
	Body string `json:"body"`
}

func (r *Richtext) Kind() Kind      { return KindRichtext }
func (r *Richtext) Partial() string { return "essence_richtext" }

func (r *Richtext) Ingredient() any {
	if r == nil {
		return nil
	}
	return r.Body
}

// Rendered converts the body to HTML. Raw HTML in the source is omitted.
func (r *Richtext) Rendered() (string, error) {
	if r == nil || strings.TrimSpace(r.Body) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(r.Body), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Stripped returns the rendered body as plain text.
func (r *Richtext) Stripped() (string, error) {
	rendered, err := r.Rendered()
	if err != nil || rendered == "" {
		return "", err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rendered))
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}

package editor

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/goliatone/go-cms-editor/internal/pages"
)

const (
	AttributeID      = "id"
	AttributeUrlname = "urlname"
)

// SelectOptions configure PagesForSelect.
type SelectOptions struct {
	// Selected marks the option whose value equals it.
	Selected string
	// Prompt replaces the label of the leading empty option.
	Prompt string
	// Attribute picks the option value: "id" (default) or "urlname".
	Attribute string
}

type pageOption struct {
	Value    string
	Label    template.HTML
	Selected bool
}

// PagesForSelect renders <option> markup for pages. With a nil list every
// page of the current language is listed in tree order and indented by
// depth; an explicit list is rendered as given, without indentation.
func (h *Helper) PagesForSelect(ctx context.Context, list []*pages.Page, opts SelectOptions) (template.HTML, error) {
	attribute := strings.ToLower(strings.TrimSpace(opts.Attribute))
	if attribute == "" {
		attribute = AttributeID
	}
	if attribute != AttributeID && attribute != AttributeUrlname {
		return "", fmt.Errorf("%w: %s", ErrUnknownAttribute, opts.Attribute)
	}

	nested := list == nil
	if nested {
		tree, err := h.currentTree(ctx)
		if err != nil {
			return "", err
		}
		list = tree
	}

	options := make([]pageOption, 0, len(list))
	for _, page := range list {
		if page == nil {
			continue
		}
		value := page.ID.String()
		if attribute == AttributeUrlname {
			value = page.Urlname
		}
		label := template.HTML(template.HTMLEscapeString(page.Name))
		if nested && page.Depth > 0 {
			label = template.HTML(strings.Repeat(string(h.indent), page.Depth)) + label
		}
		options = append(options, pageOption{
			Value:    value,
			Label:    label,
			Selected: opts.Selected != "" && value == opts.Selected,
		})
	}

	prompt := opts.Prompt
	if prompt == "" {
		prompt = h.prompt
	}
	return h.render("page_options", struct {
		Prompt  string
		Options []pageOption
	}{Prompt: prompt, Options: options})
}

func (h *Helper) currentTree(ctx context.Context) ([]*pages.Page, error) {
	if h.pages == nil || h.languages == nil {
		return nil, ErrPagesUnavailable
	}
	languageID, err := h.languages.CurrentLanguageID(ctx)
	if err != nil {
		return nil, err
	}
	return h.pages.ListByLanguage(ctx, languageID, pages.ListOptions{})
}

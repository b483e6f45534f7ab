package elements

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-cms-editor/internal/essences"
	cmsvalidation "github.com/goliatone/go-cms-editor/internal/validation"
)

var (
	ErrDefinitionNameRequired = errors.New("elements: definition name is required")
	ErrDefinitionExists       = errors.New("elements: definition already registered")
	ErrDefinitionNotFound     = errors.New("elements: definition not found")
	ErrDuplicateContentName   = errors.New("elements: duplicate content name in definition")
)

//go:embed definitions.schema.json
var definitionsSchemaDocument []byte

var definitionsSchema = cmsvalidation.MustCompile(definitionsSchemaDocument)

// ContentDefinition declares one content slot of an element.
type ContentDefinition struct {
	Name     string         `yaml:"name" json:"name"`
	Type     string         `yaml:"type" json:"type"`
	Default  any            `yaml:"default,omitempty" json:"default,omitempty"`
	Settings map[string]any `yaml:"settings,omitempty" json:"settings,omitempty"`
}

// Kind resolves the declared type to an essence kind.
func (c ContentDefinition) Kind() (essences.Kind, error) {
	return essences.ParseKind(c.Type)
}

// Definition describes an element and the contents it is built from.
type Definition struct {
	Name     string              `yaml:"name" json:"name"`
	Hint     string              `yaml:"hint,omitempty" json:"hint,omitempty"`
	Contents []ContentDefinition `yaml:"contents,omitempty" json:"contents,omitempty"`
}

// Content returns the content definition called name.
func (d Definition) Content(name string) (ContentDefinition, bool) {
	for _, content := range d.Contents {
		if content.Name == name {
			return content, true
		}
	}
	return ContentDefinition{}, false
}

func (d Definition) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required.ErrorObject(validation.NewError("elements.definition_name_required", ErrDefinitionNameRequired.Error()))),
		validation.Field(&d.Contents, validation.By(uniqueContentNames), validation.Each(validation.By(knownContentType))),
	)
}

func uniqueContentNames(value any) error {
	contents, _ := value.([]ContentDefinition)
	seen := make(map[string]struct{}, len(contents))
	for _, content := range contents {
		if _, ok := seen[content.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateContentName, content.Name)
		}
		seen[content.Name] = struct{}{}
	}
	return nil
}

func knownContentType(value any) error {
	content, ok := value.(ContentDefinition)
	if !ok {
		return nil
	}
	if strings.TrimSpace(content.Name) == "" {
		return validation.NewError("elements.content_name_required", "content name is required")
	}
	if _, err := content.Kind(); err != nil {
		return err
	}
	return nil
}

// ParseDefinitions decodes a YAML list of element definitions, checking it
// against the definitions schema and the definition rules.
func ParseDefinitions(data []byte) ([]Definition, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("elements: parse definitions: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	if err := definitionsSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("elements: definitions: %w", err)
	}

	var defs []Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("elements: decode definitions: %w", err)
	}
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("elements: definition %q: %w", def.Name, err)
		}
	}
	return defs, nil
}

// LoadDefinitionsFile reads and parses definitions from path.
func LoadDefinitionsFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("elements: read definitions: %w", err)
	}
	return ParseDefinitions(data)
}

// Registry holds element definitions by name.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// NewRegistryFromDefinitions registers every definition in defs.
func NewRegistryFromDefinitions(defs []Definition) (*Registry, error) {
	registry := NewRegistry()
	for _, def := range defs {
		if err := registry.Register(def); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func (r *Registry) Register(def Definition) error {
	def.Name = strings.TrimSpace(def.Name)
	if err := def.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[def.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDefinitionExists, def.Name)
	}
	r.defs[def.Name] = def
	return nil
}

func (r *Registry) Get(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[strings.TrimSpace(name)]
	return def, ok
}

// List returns definitions sorted by name.
func (r *Registry) List() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Definition, 0, len(r.defs))
	for _, def := range r.defs {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

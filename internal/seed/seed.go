package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-cms-editor/internal/elements"
	"github.com/goliatone/go-cms-editor/internal/essences"
	"github.com/goliatone/go-cms-editor/internal/identity"
	"github.com/goliatone/go-cms-editor/internal/languages"
	"github.com/goliatone/go-cms-editor/internal/logging"
	"github.com/goliatone/go-cms-editor/internal/pages"
	"github.com/goliatone/go-cms-editor/internal/pictures"
	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

var (
	ErrServicesRequired     = errors.New("seed: language, page, picture and element services are required")
	ErrPageLanguageUnknown  = errors.New("seed: page references an unknown language")
	ErrPictureKeyUnknown    = errors.New("seed: content references an unknown picture")
	ErrContentNotOnElement  = errors.New("seed: content is not declared by the element")
	ErrContentValueMismatch = errors.New("seed: content value does not fit the essence kind")
)

// Fixture is the YAML document read by Load.
type Fixture struct {
	Languages []LanguageFixture `yaml:"languages"`
	Pictures  []PictureFixture  `yaml:"pictures"`
	Pages     []PageFixture     `yaml:"pages"`
}

type LanguageFixture struct {
	Code    string `yaml:"code"`
	Name    string `yaml:"name"`
	Default bool   `yaml:"default"`
}

// PictureFixture is referenced from picture contents by Key.
type PictureFixture struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	FileName string `yaml:"file_name"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Format   string `yaml:"format"`
}

type PageFixture struct {
	Language string           `yaml:"language"`
	Name     string           `yaml:"name"`
	Urlname  string           `yaml:"urlname"`
	Public   bool             `yaml:"public"`
	Elements []ElementFixture `yaml:"elements"`
	Children []PageFixture    `yaml:"children"`
}

// ElementFixture places an element with all its declared contents. Values
// listed under Contents overwrite the declared defaults.
type ElementFixture struct {
	Name     string                    `yaml:"name"`
	Contents map[string]ContentFixture `yaml:"contents"`
}

// ContentFixture carries the essence values. Only the fields that fit the
// content's kind may be set.
type ContentFixture struct {
	Body     string `yaml:"body"`
	Link     string `yaml:"link"`
	Value    *bool  `yaml:"value"`
	Picture  string `yaml:"picture"`
	Caption  string `yaml:"caption"`
	Title    string `yaml:"title"`
	AltTag   string `yaml:"alt_tag"`
	CropFrom string `yaml:"crop_from"`
	CropSize string `yaml:"crop_size"`
}

// Services groups the services a seed writes through.
type Services struct {
	Languages languages.Service
	Pages     pages.Service
	Pictures  pictures.Service
	Elements  elements.Service
	Logger    interfaces.Logger
}

// Result reports what a run created. Records that already existed are not
// counted.
type Result struct {
	Languages int
	Pictures  int
	Pages     int
	Elements  int
}

// Parse decodes a fixture document.
func Parse(data []byte) (*Fixture, error) {
	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("seed: decode: %w", err)
	}
	return &fixture, nil
}

// LoadFile reads and applies the fixture at path.
func LoadFile(ctx context.Context, path string, services Services) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("seed: read %s: %w", path, err)
	}
	fixture, err := Parse(data)
	if err != nil {
		return Result{}, err
	}
	return Load(ctx, fixture, services)
}

// Load applies the fixture. Identifiers are derived from stable keys so a
// second run finds every record and creates nothing.
func Load(ctx context.Context, fixture *Fixture, services Services) (Result, error) {
	if services.Languages == nil || services.Pages == nil || services.Pictures == nil || services.Elements == nil {
		return Result{}, ErrServicesRequired
	}
	if fixture == nil {
		return Result{}, nil
	}
	run := &loader{
		services:  services,
		logger:    logging.Ensure(services.Logger),
		languages: map[string]uuid.UUID{},
		pictures:  map[string]*pictures.Picture{},
	}
	for _, language := range fixture.Languages {
		if err := run.language(ctx, language); err != nil {
			return run.result, err
		}
	}
	for _, picture := range fixture.Pictures {
		if err := run.picture(ctx, picture); err != nil {
			return run.result, err
		}
	}
	for _, page := range fixture.Pages {
		if err := run.page(ctx, page, nil); err != nil {
			return run.result, err
		}
	}
	run.logger.Info("seed.loaded",
		"languages", run.result.Languages,
		"pictures", run.result.Pictures,
		"pages", run.result.Pages,
		"elements", run.result.Elements,
	)
	return run.result, nil
}

type loader struct {
	services  Services
	logger    interfaces.Logger
	languages map[string]uuid.UUID
	pictures  map[string]*pictures.Picture
	result    Result
}

func (l *loader) language(ctx context.Context, fixture LanguageFixture) error {
	code := strings.ToLower(strings.TrimSpace(fixture.Code))
	existing, err := l.services.Languages.GetByCode(ctx, code)
	switch {
	case err == nil:
		l.languages[code] = existing.ID
		return nil
	case !languages.IsNotFound(err):
		return err
	}
	created, err := l.services.Languages.Create(ctx, languages.CreateLanguageRequest{
		ID:      identity.LanguageUUID(code),
		Code:    code,
		Name:    fixture.Name,
		Default: fixture.Default,
	})
	if err != nil {
		return fmt.Errorf("seed: language %s: %w", code, err)
	}
	l.languages[code] = created.ID
	l.result.Languages++
	return nil
}

func (l *loader) picture(ctx context.Context, fixture PictureFixture) error {
	key := strings.TrimSpace(fixture.Key)
	id := identity.PictureUUID(key)
	existing, err := l.services.Pictures.Get(ctx, id)
	switch {
	case err == nil:
		l.pictures[key] = existing
		return nil
	case !pictures.IsNotFound(err):
		return err
	}
	created, err := l.services.Pictures.Create(ctx, pictures.CreatePictureRequest{
		ID:       id,
		Name:     fixture.Name,
		FileName: fixture.FileName,
		Width:    fixture.Width,
		Height:   fixture.Height,
		Format:   fixture.Format,
	})
	if err != nil {
		return fmt.Errorf("seed: picture %s: %w", key, err)
	}
	l.pictures[key] = created
	l.result.Pictures++
	return nil
}

func (l *loader) page(ctx context.Context, fixture PageFixture, parent *uuid.UUID) error {
	code := strings.ToLower(strings.TrimSpace(fixture.Language))
	languageID, ok := l.languages[code]
	if !ok {
		language, err := l.services.Languages.GetByCode(ctx, code)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrPageLanguageUnknown, code)
		}
		languageID = language.ID
		l.languages[code] = languageID
	}

	key := strings.TrimSpace(fixture.Urlname)
	if key == "" {
		key = strings.TrimSpace(fixture.Name)
	}
	id := identity.PageUUID(code, key)
	page, err := l.services.Pages.Get(ctx, id)
	if err != nil {
		if !pages.IsNotFound(err) {
			return err
		}
		page, err = l.services.Pages.Create(ctx, pages.CreatePageRequest{
			ID:         id,
			LanguageID: languageID,
			ParentID:   parent,
			Name:       fixture.Name,
			Urlname:    fixture.Urlname,
			Public:     fixture.Public,
		})
		if err != nil {
			return fmt.Errorf("seed: page %s: %w", key, err)
		}
		l.result.Pages++
	}

	for idx, element := range fixture.Elements {
		if err := l.element(ctx, page.ID, idx+1, element); err != nil {
			return err
		}
	}
	pageID := page.ID
	for _, child := range fixture.Children {
		if err := l.page(ctx, child, &pageID); err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) element(ctx context.Context, pageID uuid.UUID, position int, fixture ElementFixture) error {
	name := strings.TrimSpace(fixture.Name)
	id := identity.ElementUUID(pageID, name, position)
	if _, err := l.services.Elements.Get(ctx, id); err == nil {
		return nil
	} else if !elements.IsNotFound(err) {
		return err
	}
	element, err := l.services.Elements.Create(ctx, elements.CreateElementRequest{
		ID:                   id,
		PageID:               pageID,
		Name:                 name,
		Position:             position,
		AutogenerateContents: true,
	})
	if err != nil {
		return fmt.Errorf("seed: element %s: %w", name, err)
	}
	l.result.Elements++

	for contentName, value := range fixture.Contents {
		content := element.ContentByName(contentName)
		if content == nil {
			return fmt.Errorf("%w: %s.%s", ErrContentNotOnElement, name, contentName)
		}
		essence, err := l.essence(content, value)
		if err != nil {
			return fmt.Errorf("seed: %s.%s: %w", name, contentName, err)
		}
		if _, err := l.services.Elements.UpdateEssence(ctx, content.ID, essence); err != nil {
			return fmt.Errorf("seed: %s.%s: %w", name, contentName, err)
		}
	}
	return nil
}

func (l *loader) essence(content *elements.Content, value ContentFixture) (essences.Essence, error) {
	switch content.Kind {
	case essences.KindText:
		if value.Picture != "" || value.Value != nil {
			return nil, ErrContentValueMismatch
		}
		return &essences.Text{Body: value.Body, Link: value.Link}, nil
	case essences.KindRichtext:
		if value.Picture != "" || value.Value != nil || value.Link != "" {
			return nil, ErrContentValueMismatch
		}
		return &essences.Richtext{Body: value.Body}, nil
	case essences.KindBoolean:
		if value.Value == nil {
			return nil, ErrContentValueMismatch
		}
		return &essences.Boolean{Value: *value.Value}, nil
	case essences.KindPicture:
		if value.Body != "" || value.Value != nil {
			return nil, ErrContentValueMismatch
		}
		essence := &essences.Picture{
			Caption:  value.Caption,
			Title:    value.Title,
			AltTag:   value.AltTag,
			CropFrom: value.CropFrom,
			CropSize: value.CropSize,
			Link:     value.Link,
		}
		if key := strings.TrimSpace(value.Picture); key != "" {
			picture, ok := l.pictures[key]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrPictureKeyUnknown, key)
			}
			essence.Attach(picture)
		}
		return essence, nil
	default:
		return nil, fmt.Errorf("%w: %s", essences.ErrUnknownKind, content.Kind)
	}
}

package essences_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-cms-editor/internal/essences"
	"github.com/goliatone/go-cms-editor/internal/pictures"
)

func TestNewReturnsVariantPerKind(t *testing.T) {
	for _, kind := range essences.Kinds() {
		essence, err := essences.New(kind)
		if err != nil {
			t.Fatalf("new %s: %v", kind, err)
		}
		if essence.Kind() != kind {
			t.Fatalf("expected kind %s got %s", kind, essence.Kind())
		}
		if essence.Partial() != "essence_"+string(kind) {
			t.Fatalf("unexpected partial %q for %s", essence.Partial(), kind)
		}
	}

	if _, err := essences.New("video"); !errors.Is(err, essences.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind got %v", err)
	}
	if _, err := essences.ParseKind(" Text "); err != nil {
		t.Fatalf("parse kind: %v", err)
	}
}

func TestPictureIngredientIsNilWithoutPicture(t *testing.T) {
	essence := &essences.Picture{}
	if essence.Ingredient() != nil {
		t.Fatalf("expected nil ingredient")
	}
	if essence.ImageFileWidth() != 0 {
		t.Fatalf("expected zero width")
	}

	picture := &pictures.Picture{ID: uuid.New(), ImageFileWidth: 140, ImageFileHeight: 169}
	essence.Attach(picture)
	if essence.Ingredient() != picture {
		t.Fatalf("expected attached picture as ingredient")
	}
	if essence.PictureID == nil || *essence.PictureID != picture.ID {
		t.Fatalf("expected picture id to follow attachment")
	}
	if essence.ImageFileWidth() != 140 || essence.ImageFileHeight() != 169 {
		t.Fatalf("unexpected dimensions %dx%d", essence.ImageFileWidth(), essence.ImageFileHeight())
	}
}

func TestWithDefaultSeedsScalars(t *testing.T) {
	text, err := essences.WithDefault(essences.KindText, "hello!")
	if err != nil {
		t.Fatalf("text default: %v", err)
	}
	if text.Ingredient() != "hello!" {
		t.Fatalf("expected hello! got %v", text.Ingredient())
	}
	boolean, err := essences.WithDefault(essences.KindBoolean, true)
	if err != nil {
		t.Fatalf("boolean default: %v", err)
	}
	if boolean.Ingredient() != true {
		t.Fatalf("expected true got %v", boolean.Ingredient())
	}
}

func TestRichtextRenderedAndStripped(t *testing.T) {
	essence := &essences.Richtext{Body: "# Title\n\nSome *emphasis* <script>x</script>"}
	rendered, err := essence.Rendered()
	if err != nil {
		t.Fatalf("rendered: %v", err)
	}
	if !strings.Contains(rendered, "<em>emphasis</em>") {
		t.Fatalf("expected emphasis markup, got %q", rendered)
	}
	if strings.Contains(rendered, "<script>") {
		t.Fatalf("expected raw html to be omitted, got %q", rendered)
	}
	stripped, err := essence.Stripped()
	if err != nil {
		t.Fatalf("stripped: %v", err)
	}
	if strings.Contains(stripped, "<") || !strings.Contains(stripped, "Title") {
		t.Fatalf("unexpected stripped text %q", stripped)
	}
}

func TestEncodeDecode(t *testing.T) {
	id := uuid.New()
	payload, err := essences.Encode(&essences.Picture{PictureID: &id, Caption: "Sunset", CropFrom: "0x0", CropSize: "200x100"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := essences.Decode(essences.KindPicture, payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	picture := decoded.(*essences.Picture)
	if picture.PictureID == nil || *picture.PictureID != id || !picture.HasCustomCrop() {
		t.Fatalf("unexpected decoded picture %+v", picture)
	}
	if picture.Picture != nil {
		t.Fatalf("expected picture record to stay unresolved")
	}

	empty, err := essences.Decode(essences.KindText, nil)
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if empty.Ingredient() != "" {
		t.Fatalf("expected empty body got %v", empty.Ingredient())
	}
	if _, err := essences.Decode("video", []byte(`{}`)); !errors.Is(err, essences.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind got %v", err)
	}
}

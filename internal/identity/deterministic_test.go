package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := LanguageUUID("DE")
	second := LanguageUUID(" de ")
	if first == uuid.Nil {
		t.Fatal("expected non-nil uuid")
	}
	if first != second {
		t.Fatalf("expected normalized keys to match, got %s vs %s", first, second)
	}
}

func TestUUIDDistinguishesDomains(t *testing.T) {
	if PictureUUID("logo") == UUID("editor:page:de:logo") {
		t.Fatal("picture and page keys must not collide")
	}
	page := PageUUID("de", "startseite")
	if ElementUUID(page, "article", 0) == ElementUUID(page, "article", 1) {
		t.Fatal("element position must be part of the key")
	}
}

func TestUUIDEmptyKey(t *testing.T) {
	if got := UUID("  "); got != uuid.Nil {
		t.Fatalf("expected uuid.Nil for blank key, got %s", got)
	}
}

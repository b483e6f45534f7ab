package identity

import (
	"strconv"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
// Seeded fixtures use it so re-running a seed yields the same identifiers.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

func LanguageUUID(code string) uuid.UUID {
	return UUID("editor:language:" + strings.ToLower(strings.TrimSpace(code)))
}

func PageUUID(languageCode, urlname string) uuid.UUID {
	return UUID("editor:page:" + strings.ToLower(strings.TrimSpace(languageCode)) + ":" + strings.TrimSpace(urlname))
}

func PictureUUID(key string) uuid.UUID {
	return UUID("editor:picture:" + strings.TrimSpace(key))
}

func ElementUUID(pageID uuid.UUID, name string, position int) uuid.UUID {
	return UUID("editor:element:" + pageID.String() + ":" + strings.TrimSpace(name) + ":" + strconv.Itoa(position))
}

func ContentUUID(elementID uuid.UUID, name string) uuid.UUID {
	return UUID("editor:content:" + elementID.String() + ":" + strings.TrimSpace(name))
}

package pictures

import (
	"path"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Picture is an uploaded image together with the intrinsic metadata of its
// file.
type Picture struct {
	bun.BaseModel `bun:"table:pictures,alias:pic"`

	ID              uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Name            string    `bun:"name,notnull" json:"name"`
	ImageFileName   string    `bun:"image_file_name,notnull" json:"image_file_name"`
	ImageFileUID    string    `bun:"image_file_uid" json:"image_file_uid,omitempty"`
	ImageFileWidth  int       `bun:"image_file_width,notnull" json:"image_file_width"`
	ImageFileHeight int       `bun:"image_file_height,notnull" json:"image_file_height"`
	ImageFileFormat string    `bun:"image_file_format" json:"image_file_format,omitempty"`
	ImageFileSize   int64     `bun:"image_file_size" json:"image_file_size,omitempty"`
	CreatedAt       time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Urlname returns the slug used in picture URLs. It falls back to the file
// name and finally to the identifier.
func (p *Picture) Urlname() string {
	if p == nil {
		return ""
	}
	for _, candidate := range []string{p.Name, trimExtension(p.ImageFileName)} {
		if normalized, err := slug.Normalize(candidate); err == nil && normalized != "" {
			return normalized
		}
	}
	return p.ID.String()
}

// Format returns the image format, derived from the file name when unset.
func (p *Picture) Format() string {
	if p == nil {
		return ""
	}
	if p.ImageFileFormat != "" {
		return strings.ToLower(p.ImageFileFormat)
	}
	if ext := strings.TrimPrefix(path.Ext(p.ImageFileName), "."); ext != "" {
		return strings.ToLower(ext)
	}
	return "jpg"
}

func trimExtension(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

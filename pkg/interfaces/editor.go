package interfaces

import (
	"context"

	"github.com/google/uuid"
)

// LanguageResolver returns the language the current request operates on.
// Implementations fall back to the default language when the context does
// not carry one.
type LanguageResolver interface {
	CurrentLanguageID(ctx context.Context) (uuid.UUID, error)
}

// ThumbnailRequest describes a single thumbnail rendition of a picture.
type ThumbnailRequest struct {
	PictureID uuid.UUID
	Name      string
	Format    string
	Size      string
	Crop      bool
	CropFrom  string
	CropSize  string
	Upsample  bool
}

// ThumbnailURLBuilder turns a thumbnail request into a URL the admin can load.
type ThumbnailURLBuilder interface {
	ThumbnailURL(req ThumbnailRequest) (string, error)
}

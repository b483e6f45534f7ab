package essences

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-cms-editor/internal/pictures"
)

// Picture attaches a picture together with its presentation attributes.
// CropFrom and CropSize describe a custom crop box as "XxY" and "WxH".
type Picture struct {
	PictureID *uuid.UUID        `json:"picture_id,omitempty"`
	Picture   *pictures.Picture `json:"-"`
	Caption   string            `json:"caption,omitempty"`
	Title     string            `json:"title,omitempty"`
	AltTag    string            `json:"alt_tag,omitempty"`
	CropFrom  string            `json:"crop_from,omitempty"`
	CropSize  string            `json:"crop_size,omitempty"`
	Link      string            `json:"link,omitempty"`
	CSSClass  string            `json:"css_class,omitempty"`
}

func (p *Picture) Kind() Kind      { return KindPicture }
func (p *Picture) Partial() string { return "essence_picture" }

// Ingredient returns the attached picture or nil.
func (p *Picture) Ingredient() any {
	if p == nil || p.Picture == nil {
		return nil
	}
	return p.Picture
}

// Attach sets the picture and its identifier together.
func (p *Picture) Attach(picture *pictures.Picture) {
	if picture == nil {
		p.Picture = nil
		p.PictureID = nil
		return
	}
	id := picture.ID
	p.Picture = picture
	p.PictureID = &id
}

func (p *Picture) ImageFileWidth() int {
	if p == nil || p.Picture == nil {
		return 0
	}
	return p.Picture.ImageFileWidth
}

func (p *Picture) ImageFileHeight() int {
	if p == nil || p.Picture == nil {
		return 0
	}
	return p.Picture.ImageFileHeight
}

// HasCustomCrop reports whether an explicit crop box was stored.
func (p *Picture) HasCustomCrop() bool {
	return p != nil && p.CropFrom != "" && p.CropSize != ""
}

package elements

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-cms-editor/internal/essences"
)

// Element is a named, ordered group of contents placed on a page.
type Element struct {
	bun.BaseModel `bun:"table:elements,alias:el"`

	ID        uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	PageID    uuid.UUID  `bun:"page_id,notnull,type:uuid" json:"page_id"`
	Name      string     `bun:"name,notnull" json:"name"`
	Position  int        `bun:"position,notnull,default:0" json:"position"`
	Contents  []*Content `bun:"-" json:"contents,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// ContentByName returns the content called name, or nil.
func (e *Element) ContentByName(name string) *Content {
	if e == nil {
		return nil
	}
	for _, content := range e.Contents {
		if content != nil && content.Name == name {
			return content
		}
	}
	return nil
}

// Content is a named slot on an element holding one essence. Payload is the
// encoded essence as stored; Essence is the decoded value.
type Content struct {
	bun.BaseModel `bun:"table:contents,alias:ct"`

	ID        uuid.UUID        `bun:",pk,type:uuid" json:"id"`
	ElementID uuid.UUID        `bun:"element_id,notnull,type:uuid" json:"element_id"`
	Name      string           `bun:"name,notnull" json:"name"`
	Position  int              `bun:"position,notnull,default:0" json:"position"`
	Kind      essences.Kind    `bun:"essence_kind,notnull" json:"kind"`
	Payload   []byte           `bun:"essence_payload" json:"-"`
	Essence   essences.Essence `bun:"-" json:"essence,omitempty"`
	Settings  Settings         `bun:"settings,type:jsonb" json:"settings,omitempty"`
	CreatedAt time.Time        `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time        `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Ingredient returns the essence's underlying value, or nil.
func (c *Content) Ingredient() any {
	if c == nil || c.Essence == nil {
		return nil
	}
	return c.Essence.Ingredient()
}

// PictureEssence returns the picture essence, or nil for other kinds.
func (c *Content) PictureEssence() *essences.Picture {
	if c == nil {
		return nil
	}
	picture, _ := c.Essence.(*essences.Picture)
	return picture
}

func (c *Content) encode() error {
	if c.Essence == nil {
		empty, err := essences.New(c.Kind)
		if err != nil {
			return err
		}
		c.Essence = empty
	}
	payload, err := essences.Encode(c.Essence)
	if err != nil {
		return err
	}
	c.Payload = payload
	return nil
}

func (c *Content) decode() error {
	essence, err := essences.Decode(c.Kind, c.Payload)
	if err != nil {
		return err
	}
	c.Essence = essence
	return nil
}

package pages

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Page is a node of a language's page tree. The tree is stored as a nested
// set: a page's descendants are the pages whose Lft lies between its Lft and
// Rgt.
type Page struct {
	bun.BaseModel `bun:"table:pages,alias:p"`

	ID           uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	LanguageID   uuid.UUID  `bun:"language_id,notnull,type:uuid" json:"language_id"`
	ParentID     *uuid.UUID `bun:"parent_id,type:uuid" json:"parent_id,omitempty"`
	Name         string     `bun:"name,notnull" json:"name"`
	Urlname      string     `bun:"urlname,notnull" json:"urlname"`
	Lft          int        `bun:"lft,notnull" json:"lft"`
	Rgt          int        `bun:"rgt,notnull" json:"rgt"`
	Depth        int        `bun:"depth,notnull" json:"depth"`
	Public       bool       `bun:"public,notnull,default:false" json:"public"`
	LanguageRoot bool       `bun:"language_root,notnull,default:false" json:"language_root"`
	CreatedAt    time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// IsLeaf reports whether the page has no children.
func (p *Page) IsLeaf() bool {
	return p.Rgt-p.Lft == 1
}

// Contains reports whether other is a descendant of p.
func (p *Page) Contains(other *Page) bool {
	if p == nil || other == nil || p.LanguageID != other.LanguageID {
		return false
	}
	return other.Lft > p.Lft && other.Rgt < p.Rgt
}

package essences

// Text is a single line of text with an optional link.
type Text struct {
	Body       string `json:"body"`
	Link       string `json:"link,omitempty"`
	LinkTitle  string `json:"link_title,omitempty"`
	LinkTarget string `json:"link_target,omitempty"`
}

func (t *Text) Kind() Kind      { return KindText }
func (t *Text) Partial() string { return "essence_text" }

func (t *Text) Ingredient() any {
	if t == nil {
		return nil
	}
	return t.Body
}

// Boolean is a checkbox value.
type Boolean struct {
	Value bool `json:"value"`
}

func (b *Boolean) Kind() Kind      { return KindBoolean }
func (b *Boolean) Partial() string { return "essence_boolean" }

func (b *Boolean) Ingredient() any {
	if b == nil {
		return nil
	}
	return b.Value
}

package elements

import (
	"fmt"
	"maps"
	"strings"
)

// Settings holds per-content editor settings such as caption_as_textarea,
// sizes, image_size or crop.
type Settings map[string]any

// Has reports whether key is present with a non-nil value.
func (s Settings) Has(key string) bool {
	if s == nil {
		return false
	}
	value, ok := s[key]
	return ok && value != nil
}

// Bool interprets key as a boolean. Strings "true", "1" and "yes" count as
// true.
func (s Settings) Bool(key string) bool {
	if s == nil {
		return false
	}
	switch v := s[key].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			return true
		}
	case int:
		return v != 0
	case float64:
		return v != 0
	}
	return false
}

// String returns key formatted as a string, or "" when absent.
func (s Settings) String(key string) string {
	if !s.Has(key) {
		return ""
	}
	if v, ok := s[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return fmt.Sprint(s[key])
}

// Strings returns key as a string slice. A single string yields one element.
func (s Settings) Strings(key string) []string {
	if !s.Has(key) {
		return nil
	}
	switch v := s[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		return []string{v}
	}
	return nil
}

// Value looks key up in overrides first, then in the settings.
func (s Settings) Value(key string, overrides map[string]any) any {
	if overrides != nil {
		if value, ok := overrides[key]; ok && value != nil {
			return value
		}
	}
	if s == nil {
		return nil
	}
	return s[key]
}

// Clone returns a shallow copy.
func (s Settings) Clone() Settings {
	return maps.Clone(s)
}

package essences

import (
	"encoding/json"
	"fmt"
)

// Encode serializes essence into the payload stored next to its content.
func Encode(essence Essence) ([]byte, error) {
	if essence == nil {
		return nil, fmt.Errorf("essences: nil essence")
	}
	if _, err := ParseKind(string(essence.Kind())); err != nil {
		return nil, err
	}
	return json.Marshal(essence)
}

// Decode rebuilds an essence of kind from payload. An empty payload yields an
// empty essence.
func Decode(kind Kind, payload []byte) (Essence, error) {
	essence, err := New(kind)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 || string(payload) == "null" {
		return essence, nil
	}
	if err := json.Unmarshal(payload, essence); err != nil {
		return nil, fmt.Errorf("essences: decode %s: %w", kind, err)
	}
	return essence, nil
}

package configurator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"oakframe-configurator/models"
)

var canonicalAPI = jsoniter.Config{
	SortMapKeys: true,
	EscapeHTML:  false,
}.Froze()

// CanonicalJSON serializes a state with recursively sorted keys
// Values go through a generic decode first, so typed records, ints and floats spell the same
// way they would after a JSON round trip. Nil values are dropped. Absent states encode as "".
func CanonicalJSON(state models.ConfigState) (string, error) {
	if state.IsEmpty() {
		return "", nil
	}
	raw, err := canonicalAPI.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to encode configuration: %w", err)
	}
	var generic any
	if err := canonicalAPI.Unmarshal(raw, &generic); err != nil {
		return "", fmt.Errorf("failed to decode configuration: %w", err)
	}
	out, err := canonicalAPI.Marshal(dropNil(generic))
	if err != nil {
		return "", fmt.Errorf("failed to encode canonical configuration: %w", err)
	}
	return string(out), nil
}

// ConfigHash returns the hex SHA-256 of the canonical form, "" for an absent configuration
func ConfigHash(state models.ConfigState) (string, error) {
	canonical, err := CanonicalJSON(state)
	if err != nil {
		return "", err
	}
	if canonical == "" || canonical == "{}" {
		return "", nil
	}
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:]), nil
}

// ConfigsEqual reports whether two states describe the same purchasable item
// Two absent states are equal; an absent state never equals a configured one.
func ConfigsEqual(a, b models.ConfigState) bool {
	ha, errA := ConfigHash(a)
	hb, errB := ConfigHash(b)
	if errA != nil || errB != nil {
		return false
	}
	return ha == hb
}

func dropNil(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			if inner == nil {
				continue
			}
			out[k] = dropNil(inner)
		}
		return out
	case []any:
		for i := range t {
			t[i] = dropNil(t[i])
		}
		return t
	}
	return v
}

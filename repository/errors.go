package repository

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"oakframe-configurator/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// storeErr wraps a driver failure so callers can match it with errors.Is
func storeErr(op string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", op, models.ErrStoreUnavailable, err)
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
}

// encodeConfig returns the JSON of a configuration, nil for an absent one
func encodeConfig(state models.ConfigState) ([]byte, error) {
	if state.IsEmpty() {
		return nil, nil
	}
	return json.Marshal(state)
}

func decodeConfig(raw []byte) (models.ConfigState, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var state models.ConfigState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return state, nil
}

package decoder

import (
	"encoding/json"
	"fmt"
)

// JSON decodes data into target by a JSON marshal/unmarshal round trip.
// Struct json tags apply, unknown fields are ignored.
func JSON(data any, target any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to unmarshal to target type: %w", err)
	}

	return nil
}

// As decodes data into a new T using fn.
func As[T any](fn Func, data any) (T, error) {
	var v T
	if err := fn(data, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

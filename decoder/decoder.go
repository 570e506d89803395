// Package decoder converts decoded JSON object trees into typed structs.
package decoder

// Func decodes a generic JSON value (map[string]any, []any, scalars) into
// target, which must be a non-nil pointer.
type Func func(data any, target any) error

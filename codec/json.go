package codec

import (
	"encoding/json"
	"fmt"
)

// Object decodes a JSON-tagged value into a generic object tree
// (map[string]any, []any, string, float64, bool, nil).
var Object Codec[map[string]any] = JSON[map[string]any]()

// JSON returns a codec that decodes a JSON-tagged value into T.
// Decoding happens when Decode is called, never earlier.
func JSON[T any]() Codec[T] {
	return funcCodec[T]{
		tag:    TagJSON,
		decode: decodeJSON[T],
		encode: encodeJSON[T],
	}
}

func decodeJSON[T any](raw string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return v, nil
}

func encodeJSON[T any](v T) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("codec: failed to encode json: %w", err)
	}
	return string(data), nil
}

// DecodeString decodes a JSON document held inside an already decoded value.
// Zone identifiers travel as JSON text inside a JSON object, so they need a
// second pass.
func DecodeString[T any](s string) (T, error) {
	return decodeJSON[T](s)
}

// anyCodec erases the type parameter of a Codec.
type anyCodec[T any] struct {
	c Codec[T]
}

func (a anyCodec[T]) Tag() Tag { return a.c.Tag() }

func (a anyCodec[T]) Decode(raw string) (any, error) {
	return a.c.Decode(raw)
}

func (a anyCodec[T]) Encode(v any) (string, error) {
	tv, ok := v.(T)
	if !ok {
		var zero T
		return "", fmt.Errorf("codec: cannot encode %T as %s (want %T)", v, a.c.Tag(), zero)
	}
	return a.c.Encode(tv)
}

// Erase converts a typed codec into a Codec[any].
func Erase[T any](c Codec[T]) Codec[any] {
	return anyCodec[T]{c: c}
}

var table = map[Tag]Codec[any]{
	TagString: Erase(String),
	TagBool:   Erase(Bool),
	TagUint:   Erase(Uint),
	TagInt:    Erase(Int),
	TagFloat:  Erase(Float),
	TagJSON:   Erase(Object),
}

// ForTag returns the default codec for tag.
func ForTag(tag Tag) (Codec[any], bool) {
	c, ok := table[tag]
	return c, ok
}

// Decode decodes raw with the default codec for tag.
// Unknown tags fall back to the string codec.
func Decode(tag Tag, raw string) (any, error) {
	c, ok := table[tag]
	if !ok {
		return raw, nil
	}
	return c.Decode(raw)
}

// Encode encodes v with the default codec for tag.
// Unknown tags accept only strings.
func Encode(tag Tag, v any) (string, error) {
	c, ok := table[tag]
	if !ok {
		c = table[TagString]
	}
	return c.Encode(v)
}

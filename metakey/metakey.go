// Package metakey defines the meta key naming convention and typed keys.
//
// A meta key has the form "<Category>:<Field>_<Tag>", for example
// "Default:LobbyState_j". The tag after the final underscore selects the
// codec used to read the value.
package metakey

import (
	"fmt"
	"strings"

	"github.com/yacchi/partymeta/codec"
)

// Name is a raw meta key.
type Name string

// Parts are the components of a meta key.
type Parts struct {
	Category string
	Field    string
	Tag      codec.Tag
	// Suffix is the raw text after the final underscore.
	// It equals string(Tag) unless the tag is unknown.
	Suffix string
}

// Parse splits a name into its components.
// Names without a category separator or tag suffix are rejected.
// An unrecognized suffix is not an error; Tag is codec.TagUnknown.
func Parse(name string) (Parts, error) {
	category, rest, ok := strings.Cut(name, ":")
	if !ok || category == "" {
		return Parts{}, fmt.Errorf("metakey: %q has no category", name)
	}
	i := strings.LastIndexByte(rest, '_')
	if i <= 0 || i == len(rest)-1 {
		return Parts{}, fmt.Errorf("metakey: %q has no tag suffix", name)
	}
	suffix := rest[i+1:]
	tag, _ := codec.ParseTag(suffix)
	return Parts{
		Category: category,
		Field:    rest[:i],
		Tag:      tag,
		Suffix:   suffix,
	}, nil
}

// Tag returns the tag of the name, or codec.TagUnknown.
func (n Name) Tag() codec.Tag {
	p, err := Parse(string(n))
	if err != nil {
		return codec.TagUnknown
	}
	return p.Tag
}

// Field returns the field part of the name, which is also the root property
// of JSON-tagged values ("Default:LobbyState_j" -> "LobbyState").
func (n Name) Field() string {
	p, err := Parse(string(n))
	if err != nil {
		return ""
	}
	return p.Field
}

// Build assembles a name from its components.
func Build(category, field string, tag codec.Tag) Name {
	return Name(category + ":" + field + "_" + string(tag))
}

// Key is a meta key bound to the codec of its tag.
type Key[T any] struct {
	name  Name
	field string
	codec codec.Codec[T]
}

// Define binds name to c.
// It panics when the tag suffix of name does not match the codec's tag, so a
// mistyped key table fails at package initialization.
func Define[T any](name string, c codec.Codec[T]) Key[T] {
	p, err := Parse(name)
	if err != nil {
		panic(err)
	}
	if p.Tag != c.Tag() {
		panic(fmt.Sprintf("metakey: %q has tag %q but codec expects %q", name, p.Suffix, c.Tag()))
	}
	return Key[T]{name: Name(name), field: p.Field, codec: c}
}

// Name returns the raw key.
func (k Key[T]) Name() Name { return k.name }

// String returns the raw key.
func (k Key[T]) String() string { return string(k.name) }

// Field returns the field component of the key.
func (k Key[T]) Field() string { return k.field }

// Tag returns the key's tag.
func (k Key[T]) Tag() codec.Tag { return k.codec.Tag() }

// Decode parses a raw value stored under this key.
// Failures are returned as *ParseError.
func (k Key[T]) Decode(raw string) (T, error) {
	v, err := k.codec.Decode(raw)
	if err != nil {
		var zero T
		return zero, &ParseError{Key: k.name, Tag: k.codec.Tag(), Raw: raw, Err: err}
	}
	return v, nil
}

// Encode renders v for this key.
func (k Key[T]) Encode(v T) (string, error) {
	raw, err := k.codec.Encode(v)
	if err != nil {
		return "", fmt.Errorf("metakey: encode %s: %w", k.name, err)
	}
	return raw, nil
}

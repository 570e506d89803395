// Package codec maps meta key type tags to string decoders and encoders.
//
// Every value in a party meta store travels as a string. The suffix of the
// key (the tag) decides how that string is interpreted:
//
//	Default:RegionId_s             string
//	Default:AthenaSquadFill_b      boolean
//	Default:NumAthenaPlayersLeft_U unsigned integer
//	Default:SomeOffset_I           signed integer
//	Default:SomeRatio_d            float
//	Default:LobbyState_j           JSON object
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Tag is the type suffix of a meta key.
type Tag string

// Known tags.
const (
	TagString Tag = "s"
	TagBool   Tag = "b"
	TagUint   Tag = "U"
	TagInt    Tag = "I"
	TagFloat  Tag = "d"
	TagJSON   Tag = "j"

	// TagUnknown is reported for suffixes outside the closed set.
	// Values under such keys are readable only as strings.
	TagUnknown Tag = ""
)

// ErrSyntax is wrapped by every decode failure.
var ErrSyntax = errors.New("codec: invalid syntax")

// ParseTag converts a raw suffix to a Tag.
// Returns TagUnknown and false for anything outside the closed set.
func ParseTag(s string) (Tag, bool) {
	switch t := Tag(s); t {
	case TagString, TagBool, TagUint, TagInt, TagFloat, TagJSON:
		return t, true
	}
	return TagUnknown, false
}

// String returns a readable tag name.
func (t Tag) String() string {
	switch t {
	case TagString:
		return "string"
	case TagBool:
		return "bool"
	case TagUint:
		return "uint"
	case TagInt:
		return "int"
	case TagFloat:
		return "float"
	case TagJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Codec decodes a raw wire string into T and encodes T back.
// Decode(Encode(v)) == v holds for every value Encode accepts.
type Codec[T any] interface {
	// Tag returns the key suffix this codec serves.
	Tag() Tag
	// Decode parses a raw wire string.
	Decode(raw string) (T, error)
	// Encode renders v as a raw wire string.
	Encode(v T) (string, error)
}

// funcCodec adapts a pair of functions to Codec.
type funcCodec[T any] struct {
	tag    Tag
	decode func(string) (T, error)
	encode func(T) (string, error)
}

func (c funcCodec[T]) Tag() Tag                     { return c.tag }
func (c funcCodec[T]) Decode(raw string) (T, error) { return c.decode(raw) }
func (c funcCodec[T]) Encode(v T) (string, error)   { return c.encode(v) }

// Scalar codecs.
var (
	String Codec[string] = funcCodec[string]{
		tag:    TagString,
		decode: func(raw string) (string, error) { return raw, nil },
		encode: func(v string) (string, error) { return v, nil },
	}

	Bool Codec[bool] = funcCodec[bool]{
		tag:    TagBool,
		decode: func(raw string) (bool, error) { return decodeBool(raw), nil },
		encode: func(v bool) (string, error) { return strconv.FormatBool(v), nil },
	}

	Uint Codec[uint64] = funcCodec[uint64]{
		tag:    TagUint,
		decode: decodeUint,
		encode: func(v uint64) (string, error) { return strconv.FormatUint(v, 10), nil },
	}

	Int Codec[int64] = funcCodec[int64]{
		tag:    TagInt,
		decode: decodeInt,
		encode: func(v int64) (string, error) { return strconv.FormatInt(v, 10), nil },
	}

	Float Codec[float64] = funcCodec[float64]{
		tag:    TagFloat,
		decode: decodeFloat,
		encode: func(v float64) (string, error) { return strconv.FormatFloat(v, 'g', -1, 64), nil },
	}
)

// decodeBool reports whether raw is the truthy token.
// Anything else, including garbage, is false.
func decodeBool(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "true")
}

func decodeUint(raw string) (uint64, error) {
	u, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrSyntax, raw)
	}
	return u, nil
}

func decodeInt(raw string) (int64, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrSyntax, raw)
	}
	return i, nil
}

func decodeFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrSyntax, raw)
	}
	return f, nil
}

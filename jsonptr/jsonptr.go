// Package jsonptr resolves JSON Pointers (RFC 6901) inside decoded JSON.
//
// Meta accessors read nested fields out of JSON-tagged values, e.g.
// "/LobbyState/gameReadiness" inside "Default:LobbyState_j". A Pointer
// is parsed once and evaluated against a decoded object tree; a missing
// step anywhere along the path short-circuits to "not found".
//
// Reference: https://tools.ietf.org/html/rfc6901
package jsonptr

import (
	"fmt"
	"strconv"
	"strings"
)

// Escape escapes special characters in a key for use in JSON Pointer.
// Per RFC 6901:
//   - "~" is encoded as "~0"
//   - "/" is encoded as "~1"
func Escape(key string) string {
	// Order matters: escape ~ first, then /
	key = strings.ReplaceAll(key, "~", "~0")
	key = strings.ReplaceAll(key, "/", "~1")
	return key
}

// Unescape reverses the escaping applied by Escape.
func Unescape(key string) string {
	// Order matters: unescape / first, then ~
	key = strings.ReplaceAll(key, "~1", "/")
	key = strings.ReplaceAll(key, "~0", "~")
	return key
}

// Pointer is a parsed JSON Pointer.
// The zero value refers to the whole document.
type Pointer struct {
	raw  string
	keys []string
}

// Parse parses a JSON Pointer string.
//
//	Parse("")                         -> whole document
//	Parse("/LobbyState/gameReadiness") -> ["LobbyState", "gameReadiness"]
//	Parse("/a~1b")                    -> ["a/b"]
//	Parse("LobbyState")               -> error (must start with "/")
func Parse(s string) (Pointer, error) {
	if s == "" {
		return Pointer{}, nil
	}
	if !strings.HasPrefix(s, "/") {
		return Pointer{}, fmt.Errorf("jsonptr: invalid pointer %q: must start with '/' or be empty", s)
	}

	parts := strings.Split(s[1:], "/")
	keys := make([]string, len(parts))
	for i, part := range parts {
		keys[i] = Unescape(part)
	}
	return Pointer{raw: s, keys: keys}, nil
}

// MustParse is Parse for package-level pointer tables.
// It panics on an invalid pointer.
func MustParse(s string) Pointer {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// New builds a pointer from unescaped keys.
func New(keys ...string) Pointer {
	if len(keys) == 0 {
		return Pointer{}
	}
	escaped := make([]string, len(keys))
	for i, k := range keys {
		escaped[i] = Escape(k)
	}
	return Pointer{
		raw:  "/" + strings.Join(escaped, "/"),
		keys: append([]string(nil), keys...),
	}
}

// String returns the pointer in RFC 6901 form.
func (p Pointer) String() string {
	return p.raw
}

// Keys returns the unescaped reference tokens.
func (p Pointer) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Append returns a pointer extended by keys.
func (p Pointer) Append(keys ...string) Pointer {
	return New(append(p.Keys(), keys...)...)
}

// Lookup resolves the pointer against doc.
// Objects are map[string]any and arrays are []any, as produced by
// encoding/json. Returns false if any step is missing or of the wrong kind.
func (p Pointer) Lookup(doc any) (any, bool) {
	current := doc
	for _, key := range p.keys {
		switch v := current.(type) {
		case map[string]any:
			next, ok := v[key]
			if !ok {
				return nil, false
			}
			current = next

		case []any:
			index, err := strconv.Atoi(key)
			if err != nil || index < 0 || index >= len(v) {
				return nil, false
			}
			current = v[index]

		default:
			return nil, false
		}
	}
	return current, true
}

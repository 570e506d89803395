package metakey

import (
	"fmt"

	"github.com/yacchi/partymeta/codec"
)

// ParseError reports a value that is present but does not follow the grammar
// of its tag. It is distinct from absence: a missing key never produces one.
type ParseError struct {
	// Key is the meta key holding the value.
	Key Name
	// Tag is the tag the value was decoded with.
	Tag codec.Tag
	// Path locates the failing part inside a JSON value (RFC 6901).
	// Empty when the top-level value itself failed.
	Path string
	// Raw is the text that failed to decode.
	Raw string
	// Err is the underlying decode error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("metakey: %s%s: %v", e.Key, e.Path, e.Err)
	}
	return fmt.Sprintf("metakey: %s: %v", e.Key, e.Err)
}

// Unwrap returns the underlying error, so errors.Is(err, codec.ErrSyntax)
// matches.
func (e *ParseError) Unwrap() error {
	return e.Err
}

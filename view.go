package partymeta

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/yacchi/partymeta/assetpath"
	"github.com/yacchi/partymeta/codec"
	"github.com/yacchi/partymeta/decoder"
	"github.com/yacchi/partymeta/jsonptr"
	"github.com/yacchi/partymeta/metakey"
	"github.com/yacchi/partymeta/metastore"
)

// Get reads and decodes key from r.
//
// It returns ok=false with a nil error when the key is not set. A set key
// whose value does not follow its tag's grammar returns a *metakey.ParseError.
func Get[T any](r metastore.Reader, key metakey.Key[T]) (v T, ok bool, err error) {
	raw, ok := r.Get(string(key.Name()))
	if !ok {
		return v, false, nil
	}
	v, err = key.Decode(raw)
	if err != nil {
		return v, false, err
	}
	return v, true, nil
}

// Set encodes v for key into p.
func Set[T any](p metastore.Patch, key metakey.Key[T], v T) error {
	raw, err := key.Encode(v)
	if err != nil {
		return err
	}
	p[string(key.Name())] = raw
	return nil
}

// Value decodes an arbitrary key using the codec selected by its tag suffix.
// Keys with an unknown or missing suffix are returned as raw strings.
func Value(r metastore.Reader, name string) (any, bool, error) {
	raw, ok := r.Get(name)
	if !ok {
		return nil, false, nil
	}
	tag := metakey.Name(name).Tag()
	v, err := codec.Decode(tag, raw)
	if err != nil {
		return nil, false, &metakey.ParseError{Key: metakey.Name(name), Tag: tag, Raw: raw, Err: err}
	}
	return v, true, nil
}

// FailureHandler receives every parse failure a view encounters, including
// failures that best-effort composites drop.
type FailureHandler func(err *metakey.ParseError)

// Option configures a view.
type Option func(*viewOptions)

type viewOptions struct {
	logger    zerolog.Logger
	onFailure FailureHandler
	decode    decoder.Func
}

// WithLogger sets the logger used to report dropped decode failures.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *viewOptions) {
		o.logger = l
	}
}

// WithFailureHandler registers a callback for parse failures.
func WithFailureHandler(fn FailureHandler) Option {
	return func(o *viewOptions) {
		o.onFailure = fn
	}
}

// WithDecoder replaces the struct decoder used for typed sub-objects.
// The default is decoder.JSON. decoder.Mapstructure reports the same values
// absent: a fractional or out of range number for an integer field is a shape
// mismatch under both.
func WithDecoder(fn decoder.Func) Option {
	return func(o *viewOptions) {
		if fn != nil {
			o.decode = fn
		}
	}
}

// view is the shared read path of PartyMeta and MemberMeta.
// It holds a reference to the store, never a copy.
type view struct {
	store metastore.Reader
	opts  viewOptions
}

func newView(store metastore.Reader, opts []Option) view {
	o := viewOptions{
		logger: zerolog.Nop(),
		decode: decoder.JSON,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return view{store: store, opts: o}
}

// report forwards a parse failure to the failure handler.
func (v view) report(err error) {
	var pe *metakey.ParseError
	if errors.As(err, &pe) && v.opts.onFailure != nil {
		v.opts.onFailure(pe)
	}
}

// drop logs a parse failure that a best-effort accessor swallows.
func (v view) drop(err error) {
	var pe *metakey.ParseError
	if !errors.As(err, &pe) {
		return
	}
	v.opts.logger.Warn().
		Str("key", string(pe.Key)).
		Str("tag", pe.Tag.String()).
		Str("path", pe.Path).
		Err(pe.Err).
		Msg("dropped malformed meta value")
}

// object decodes a JSON-tagged key.
func (v view) object(key metakey.Key[map[string]any]) (map[string]any, bool, error) {
	obj, ok, err := Get(v.store, key)
	if err != nil {
		v.report(err)
		return nil, false, err
	}
	return obj, ok, nil
}

// field resolves a pointer inside a JSON-tagged key and asserts it to T.
// Missing keys, missing steps, and values of another type are absent.
func field[T any](v view, key metakey.Key[map[string]any], p jsonptr.Pointer) (T, bool, error) {
	var zero T
	obj, ok, err := v.object(key)
	if err != nil || !ok {
		return zero, false, err
	}
	got, ok := jsonptr.Get[T](obj, p)
	return got, ok, nil
}

// record decodes the sub-object at p into T.
// A sub-object that does not fit T is treated as absent.
func record[T any](v view, key metakey.Key[map[string]any], p jsonptr.Pointer) (T, bool, error) {
	var zero T
	sub, ok, err := field[map[string]any](v, key, p)
	if err != nil || !ok {
		return zero, false, err
	}
	out, err := decoder.As[T](v.opts.decode, sub)
	if err != nil {
		v.opts.logger.Debug().
			Str("key", key.String()).
			Str("path", p.String()).
			Err(err).
			Msg("meta object has unexpected shape")
		return zero, false, nil
	}
	return out, true, nil
}

// scalar reads a non-JSON key; failures are reported and returned.
func scalar[T any](v view, key metakey.Key[T]) (T, bool, error) {
	got, ok, err := Get(v.store, key)
	if err != nil {
		v.report(err)
	}
	return got, ok, err
}

// nonEmpty reads a string key, treating the empty string as absent.
func (v view) nonEmpty(key metakey.Key[string]) (string, bool) {
	s, ok, _ := Get(v.store, key)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// flag reads a boolean key; unset is false.
func (v view) flag(key metakey.Key[bool]) bool {
	b, _, _ := Get(v.store, key)
	return b
}

func extractAsset(path string) (string, bool) {
	return assetpath.Extract(path)
}

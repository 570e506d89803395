// Package metastore holds the raw key/value meta of one party or party member.
//
// A Store is owned by the entity it describes. Inbound presence updates are
// applied with Merge; views read it with Get. Each Merge publishes a new
// immutable snapshot, so readers are lock-free and never see part of a patch.
package metastore

import (
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Patch is a partial key/value update as delivered by the transport.
type Patch map[string]string

// Reader is the read side of a Store.
type Reader interface {
	// Get returns the raw value stored under key.
	Get(key string) (string, bool)
}

// Change describes the effect of one Merge or Remove.
type Change struct {
	// Updated lists keys that were added or whose value changed, sorted.
	Updated []string
	// Removed lists keys that were deleted, sorted.
	Removed []string
}

// IsEmpty reports whether the change touched no key.
func (c Change) IsEmpty() bool {
	return len(c.Updated) == 0 && len(c.Removed) == 0
}

// listener wraps a callback with a unique ID for reliable unsubscription.
type listener struct {
	id uint64
	fn func(Change)
}

// Store is the raw meta of one entity.
// It is safe for one writer and any number of concurrent readers; concurrent
// writers are serialized.
type Store struct {
	data atomic.Pointer[map[string]string]

	writeMu sync.Mutex

	mu        sync.RWMutex
	listeners []listener
	nextID    uint64

	logger zerolog.Logger
}

// Option configures a Store.
type Option func(*options)

type options struct {
	initial Patch
	logger  zerolog.Logger
}

// WithInitial seeds the store, as if Merge(p) had been called.
// No listener is notified for the initial contents.
func WithInitial(p Patch) Option {
	return func(o *options) {
		o.initial = p
	}
}

// WithLogger sets the logger used for merge diagnostics.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{nextID: 1, logger: o.logger}
	m := make(map[string]string, len(o.initial))
	maps.Copy(m, o.initial)
	s.data.Store(&m)
	return s
}

// load returns the current snapshot. It must not be modified.
func (s *Store) load() map[string]string {
	return *s.data.Load()
}

// Get returns the raw value stored under key, or false if it was never set
// or has been removed.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.load()[key]
	return v, ok
}

// Has reports whether key is set.
func (s *Store) Has(key string) bool {
	_, ok := s.load()[key]
	return ok
}

// Len returns the number of keys set.
func (s *Store) Len() int {
	return len(s.load())
}

// Keys returns all keys, sorted.
func (s *Store) Keys() []string {
	return slices.Sorted(maps.Keys(s.load()))
}

// Snapshot returns a copy of the current contents.
// Later merges do not affect the returned map.
func (s *Store) Snapshot() Patch {
	return maps.Clone(Patch(s.load()))
}

// Merge overwrites the keys present in p and leaves every other key as is.
// The whole patch becomes visible to readers at once.
func (s *Store) Merge(p Patch) Change {
	if len(p) == 0 {
		return Change{}
	}

	s.writeMu.Lock()
	cur := s.load()
	var change Change
	for k, v := range p {
		if old, ok := cur[k]; !ok || old != v {
			change.Updated = append(change.Updated, k)
		}
	}
	if len(change.Updated) > 0 {
		next := maps.Clone(cur)
		if next == nil {
			next = make(map[string]string, len(p))
		}
		maps.Copy(next, p)
		s.data.Store(&next)
	}
	s.writeMu.Unlock()

	slices.Sort(change.Updated)
	s.logger.Debug().
		Int("patch_keys", len(p)).
		Strs("updated", change.Updated).
		Msg("meta merged")

	s.notify(change)
	return change
}

// Remove deletes keys. Keys that are not set are ignored.
func (s *Store) Remove(keys ...string) Change {
	if len(keys) == 0 {
		return Change{}
	}

	s.writeMu.Lock()
	cur := s.load()
	var change Change
	for _, k := range keys {
		if _, ok := cur[k]; ok && !slices.Contains(change.Removed, k) {
			change.Removed = append(change.Removed, k)
		}
	}
	if len(change.Removed) > 0 {
		next := maps.Clone(cur)
		for _, k := range change.Removed {
			delete(next, k)
		}
		s.data.Store(&next)
	}
	s.writeMu.Unlock()

	slices.Sort(change.Removed)
	s.logger.Debug().
		Strs("removed", change.Removed).
		Msg("meta keys removed")

	s.notify(change)
	return change
}

// Replace makes p the complete contents of the store: keys in p are set and
// every other key is removed. Like Merge, the result is published in one swap
// and listeners are notified once.
func (s *Store) Replace(p Patch) Change {
	s.writeMu.Lock()
	cur := s.load()
	var change Change
	for k, v := range p {
		if old, ok := cur[k]; !ok || old != v {
			change.Updated = append(change.Updated, k)
		}
	}
	for k := range cur {
		if _, ok := p[k]; !ok {
			change.Removed = append(change.Removed, k)
		}
	}
	if !change.IsEmpty() {
		next := make(map[string]string, len(p))
		maps.Copy(next, p)
		s.data.Store(&next)
	}
	s.writeMu.Unlock()

	slices.Sort(change.Updated)
	slices.Sort(change.Removed)
	s.logger.Debug().
		Strs("updated", change.Updated).
		Strs("removed", change.Removed).
		Msg("meta replaced")

	s.notify(change)
	return change
}

// Subscribe registers fn to be called after every Merge, Remove or Replace that
// changed at least one key. Callbacks run synchronously on the writer's
// goroutine, in registration order.
// The returned function unsubscribes and is safe to call multiple times.
func (s *Store) Subscribe(fn func(Change)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(c Change) {
	if c.IsEmpty() {
		return
	}

	// Snapshot listeners under lock, then notify without holding it so a
	// callback may unsubscribe.
	s.mu.RLock()
	listeners := append([]listener(nil), s.listeners...)
	s.mu.RUnlock()

	for _, l := range listeners {
		l.fn(c)
	}
}

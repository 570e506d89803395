// Package snapshot loads meta snapshot files and watches them for changes.
//
// A snapshot is a JSON object mapping meta keys to their raw string values,
// exactly as a party service publishes them:
//
//	{
//	  "Default:RegionId_s": "EU",
//	  "Default:LobbyState_j": "{\"LobbyState\":{\"gameReadiness\":\"Ready\"}}"
//	}
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"

	"github.com/yacchi/partymeta/metastore"
)

// ErrNotObject is returned when a snapshot is not a JSON object.
var ErrNotObject = errors.New("snapshot must be a JSON object of strings")

// Parse decodes snapshot bytes.
func Parse(data []byte) (metastore.Patch, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotObject, err)
	}
	if raw == nil {
		return nil, ErrNotObject
	}

	p := make(metastore.Patch, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil, fmt.Errorf("%w: key %q holds %s", ErrNotObject, k, v)
		}
		p[k] = s
	}
	return p, nil
}

// Load reads and parses the snapshot at path.
func Load(path string) (metastore.Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Sync makes s hold exactly the keys of p: keys in p are set and keys
// missing from p are removed, in a single store update.
func Sync(s *metastore.Store, p metastore.Patch) metastore.Change {
	return s.Replace(p)
}

// NotifyFunc is called when the watched snapshot changes. Exactly one of p
// and err is set.
type NotifyFunc func(p metastore.Patch, err error)

// StopFunc stops a watch.
type StopFunc func() error

// Watch calls notify with the freshly loaded snapshot every time the file at
// path is written, created or renamed into place. The watch ends when ctx is
// done or stop is called.
func Watch(ctx context.Context, path string, notify NotifyFunc) (StopFunc, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	// Watch the directory containing the file rather than the file itself.
	// This handles atomic writes (temp file + rename) and file recreation.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch directory %q: %w", dir, err)
	}

	filename := filepath.Base(path)
	ops := []fsnotify.Op{fsnotify.Write, fsnotify.Create, fsnotify.Rename}

	go func() {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filename {
					continue
				}
				if !slices.ContainsFunc(ops, event.Has) {
					continue
				}
				p, err := Load(path)
				if errors.Is(err, os.ErrNotExist) {
					// Renamed away; the replacement arrives as a Create.
					continue
				}
				notify(p, err)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				notify(nil, err)
			case <-ctx.Done():
				w.Close()
				return
			}
		}
	}()

	return w.Close, nil
}

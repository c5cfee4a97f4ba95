// Package recent maintains the bounded most-recently-used directory
// list and its best-effort persistence.
package recent

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appName  = "genrefill"
	fileName = "recent.json"
)

// DefaultMax bounds the list unless overridden by configuration.
const DefaultMax = 2

// Remember returns a new list with dir resolved to an absolute path
// and moved to the front. Prior occurrences of dir are removed and the
// result is truncated to max entries.
func Remember(list []string, dir string, max int) []string {
	if max <= 0 {
		max = DefaultMax
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	out := make([]string, 0, max)
	out = append(out, dir)
	for _, d := range list {
		if d == dir {
			continue
		}
		out = append(out, d)
	}
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// Store persists the list as a flat JSON array of strings.
type Store struct {
	path string
}

// Open locates the store under the XDG data directory.
func Open() (*Store, error) {
	path, err := xdg.DataFile(filepath.Join(appName, fileName))
	if err != nil {
		return nil, err
	}
	return &Store{path: path}, nil
}

// NewStore returns a store backed by an explicit file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted list. A missing, unreadable or corrupt file
// yields an empty list; persistence problems never fail the caller.
func (s *Store) Load() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil
	}
	return list
}

// Save writes the list best-effort. Errors are swallowed; the session
// continues with an unpersisted in-memory list.
func (s *Store) Save(list []string) {
	data, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o600)
}

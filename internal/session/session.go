// Package session holds the user's current selection of paths.
package session

import (
	"path/filepath"

	"genrefill/internal/pathutil"
)

// Selection is the ordered sequence of path entries picked during a
// session. Entries are deduplicated by normalized absolute path. The
// selection lives in memory only and is cleared explicitly.
type Selection struct {
	entries []string
	seen    map[string]bool
}

// New returns an empty selection.
func New() *Selection {
	return &Selection{seen: make(map[string]bool)}
}

// Add resolves raw strings and appends the entries not already
// present. It returns the entries that were actually added.
func (s *Selection) Add(raws []string) []string {
	var added []string
	for _, path := range pathutil.Resolve(raws) {
		key := normalize(path)
		if s.seen[key] {
			continue
		}
		s.seen[key] = true
		s.entries = append(s.entries, path)
		added = append(added, path)
	}
	return added
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.entries = nil
	s.seen = make(map[string]bool)
}

// Paths returns the entries in insertion order.
func (s *Selection) Paths() []string {
	return s.entries
}

// Len returns the number of entries.
func (s *Selection) Len() int {
	return len(s.entries)
}

func normalize(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

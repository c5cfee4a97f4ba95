// Package pathutil resolves raw user-supplied path strings.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolve converts raw user-provided entries into cleaned paths,
// skipping blank entries and expanding a leading ~. No filesystem
// access happens here; existence is checked during discovery.
func Resolve(raws []string) []string {
	var cleaned []string
	for _, raw := range raws {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		cleaned = append(cleaned, ExpandHome(raw))
	}
	return cleaned
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// SplitDropped splits a drag-and-drop payload into raw path strings.
// Dropped paths arrive as one string separated by newline or semicolon.
func SplitDropped(value string) []string {
	if value == "" {
		return nil
	}
	var parts []string
	for _, chunk := range strings.Split(strings.ReplaceAll(value, ";", "\n"), "\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk != "" {
			parts = append(parts, chunk)
		}
	}
	return parts
}

// Package discover expands a user selection of files and directories
// into the list of taggable audio files.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExtMP3 is the recognized audio file extension.
const ExtMP3 = ".mp3"

// Result holds the discovered target files plus one human-readable
// warning per skipped entry.
type Result struct {
	Targets  []string
	Warnings []string
}

// IsAudioFile reports whether the path carries the recognized
// extension, case-insensitively.
func IsAudioFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ExtMP3)
}

// Collect expands the given entries into a deduplicated list of target
// files. Missing paths and files without the recognized extension each
// produce exactly one warning and are skipped. Directories are walked
// recursively in lexical order. A file reachable both directly and
// through a directory appears once, at its first-seen position.
func Collect(entries []string) Result {
	var res Result
	seen := make(map[string]bool)

	add := func(path string) {
		key := path
		if abs, err := filepath.Abs(path); err == nil {
			key = abs
		}
		if seen[key] {
			return
		}
		seen[key] = true
		res.Targets = append(res.Targets, path)
	}

	for _, entry := range entries {
		info, err := os.Stat(entry)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("missing path skipped: %s", entry))
			continue
		}
		if !info.IsDir() {
			if !IsAudioFile(entry) {
				res.Warnings = append(res.Warnings, fmt.Sprintf("not a recognized audio file, skipped: %s", entry))
				continue
			}
			add(entry)
			continue
		}
		_ = filepath.WalkDir(entry, func(path string, d os.DirEntry, walkErr error) error {
			// Skip walk errors so one unreadable subtree cannot abort discovery.
			if walkErr != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if d.IsDir() {
				return nil
			}
			if !IsAudioFile(path) {
				res.Warnings = append(res.Warnings, fmt.Sprintf("not a recognized audio file, skipped: %s", path))
				return nil
			}
			add(path)
			return nil
		})
	}

	return res
}

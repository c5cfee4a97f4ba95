// Package probe reads current tag values for display purposes.
package probe

import (
	"os"

	"github.com/dhowden/tag"
)

// Current returns the file's current genre and artist fields. Probing
// is best-effort: unreadable or untagged files yield empty strings.
func Current(path string) (genre, artist string) {
	f, err := os.Open(path)
	if err != nil {
		return "", ""
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return "", ""
	}
	return m.Genre(), m.Artist()
}

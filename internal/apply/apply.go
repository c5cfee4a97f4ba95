// Package apply edits tags on individual files and drives batch runs.
package apply

import (
	"strings"

	"genrefill/internal/artist"
)

// Container is the per-file tag view the applier edits. The ID3v2
// implementation lives in internal/id3; tests substitute an in-memory
// fake.
type Container interface {
	Artists() []string
	SetGenre(genre string)
	SetArtist(value string)
	SetArtistList(values []string)
	SetCanonicalArtists(names []string) error
	Save() error
	Close() error
}

// OpenFunc opens the tag container for one file.
type OpenFunc func(path string) (Container, error)

// Applier applies genre and artist edits to one file at a time.
type Applier struct {
	open OpenFunc
}

// New returns an Applier backed by the given container opener.
func New(open OpenFunc) *Applier {
	return &Applier{open: open}
}

// Apply mutates one file's tags.
//
// A non-empty genre overwrites the genre field. When the caller
// supplies no artist list, the file's existing artist entries are run
// through the normalizer instead, repairing legacy composite entries
// in place. With join enabled the names are stored as one delimited
// display string, otherwise as discrete entries. The canonical list
// goes into the auxiliary frame; a failure there is non-fatal and the
// display fields still get saved.
func (a *Applier) Apply(path, genre string, artists []string, join bool) error {
	c, err := a.open(path)
	if err != nil {
		return err
	}
	defer c.Close()

	if g := strings.TrimSpace(genre); g != "" {
		c.SetGenre(g)
	}

	names := artists
	if len(names) == 0 {
		names = artist.Normalize(c.Artists())
	}
	if len(names) > 0 {
		if join {
			c.SetArtist(artist.Join(names))
		} else {
			c.SetArtistList(names)
		}
		// Aux frame failures are suppressed per the error policy.
		_ = c.SetCanonicalArtists(names)
	}

	return c.Save()
}

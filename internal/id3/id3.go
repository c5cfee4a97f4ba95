// Package id3 implements the per-file tag container on top of ID3v2.
package id3

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// ArtistsFrameDescription identifies the auxiliary TXXX frame holding
// the canonical artist list, independent of how the display artist
// field is formatted.
const ArtistsFrameDescription = "ARTISTS"

// multiValueSeparator separates discrete entries inside an ID3v2.4
// text frame.
const multiValueSeparator = "\x00"

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

// File is an open tag container for one MP3 file.
type File struct {
	tag *id3v2.Tag
}

// Open parses the file's ID3v2 container. A file without an ID3 header
// gets a fresh empty container that Save materializes. Legacy ID3v2.2
// tags, which the id3v2 library cannot parse, are stripped and the
// open retried.
func Open(path string) (*File, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if errors.Is(err, id3v2.ErrUnsupportedVersion) {
		if stripErr := stripID3v2Tag(path); stripErr != nil {
			return nil, fmt.Errorf("strip unsupported ID3v2.2 tag: %w", stripErr)
		}
		tag, err = id3v2.Open(path, id3v2.Options{Parse: true})
	}
	if err != nil {
		return nil, fmt.Errorf("open container: %w", err)
	}

	// ID3v2.4 with UTF-8 for full Unicode support
	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	return &File{tag: tag}, nil
}

// Genre returns the current genre field, or "" if absent.
func (f *File) Genre() string {
	return f.tag.Genre()
}

// SetGenre overwrites the genre field with a single value.
func (f *File) SetGenre(genre string) {
	f.tag.SetGenre(genre)
}

// Artists returns the display artist field as discrete entries.
// ID3v2.4 multi-values are null-separated inside one frame.
func (f *File) Artists() []string {
	raw := f.tag.Artist()
	if raw == "" {
		return nil
	}
	return strings.Split(raw, multiValueSeparator)
}

// SetArtist stores the display artist field as a single string.
func (f *File) SetArtist(value string) {
	f.tag.SetArtist(value)
}

// SetArtistList stores the display artist field as discrete entries.
func (f *File) SetArtistList(values []string) {
	f.tag.SetArtist(strings.Join(values, multiValueSeparator))
}

// SetCanonicalArtists writes the full artist list into the auxiliary
// frame. Any existing frame with the same description is removed
// first, so repeated applies never accumulate duplicates.
func (f *File) SetCanonicalArtists(names []string) error {
	frameID := f.tag.CommonID("User defined text information frame")

	var kept []id3v2.Framer
	for _, frame := range f.tag.GetFrames(frameID) {
		if udt, ok := frame.(id3v2.UserDefinedTextFrame); ok && udt.Description == ArtistsFrameDescription {
			continue
		}
		kept = append(kept, frame)
	}
	f.tag.DeleteFrames(frameID)
	for _, frame := range kept {
		f.tag.AddFrame(frameID, frame)
	}

	f.tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
		Encoding:    id3v2.EncodingUTF8,
		Description: ArtistsFrameDescription,
		Value:       strings.Join(names, multiValueSeparator),
	})
	return nil
}

// CanonicalArtists returns the list stored in the auxiliary frame, or
// nil if the frame is absent.
func (f *File) CanonicalArtists() []string {
	frameID := f.tag.CommonID("User defined text information frame")
	for _, frame := range f.tag.GetFrames(frameID) {
		if udt, ok := frame.(id3v2.UserDefinedTextFrame); ok && udt.Description == ArtistsFrameDescription {
			if udt.Value == "" {
				return nil
			}
			return strings.Split(udt.Value, multiValueSeparator)
		}
	}
	return nil
}

// Save persists the container to disk, materializing the ID3 header
// when the file had none.
func (f *File) Save() error {
	if err := f.tag.Save(); err != nil {
		return fmt.Errorf("save container: %w", err)
	}
	return nil
}

// Close releases the underlying file handle without saving.
func (f *File) Close() error {
	return f.tag.Close()
}

// stripID3v2Tag removes ID3v2 tags from an MP3 file. This handles
// ID3v2.2 tags which the id3v2 library doesn't support.
func stripID3v2Tag(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	// Check for ID3v2 header (must have at least 10 bytes for header)
	if len(data) < 10 || string(data[:3]) != id3Magic {
		return nil // No ID3v2 tag to strip
	}

	// Parse tag size from bytes 6-9 (synchsafe integer: each byte uses only 7 bits)
	size := int(data[6])<<21 | int(data[7])<<14 | int(data[8])<<7 | int(data[9])
	tagSize := size + 10 // Add 10-byte header

	// Check for footer flag (bit 4 of flags byte) - ID3v2.4 only
	if data[5]&0x10 != 0 {
		tagSize += 10
	}

	if tagSize >= len(data) {
		return fmt.Errorf("ID3v2 tag size (%d) exceeds file size (%d)", tagSize, len(data))
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}

	// Write audio data without the ID3v2 tag
	if err := os.WriteFile(path, data[tagSize:], info.Mode()); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

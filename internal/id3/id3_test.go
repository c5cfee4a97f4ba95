package id3

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/bogem/id3v2/v2"
)

// createBareMP3 writes a minimal MP3 frame with no ID3 header.
func createBareMP3(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "test.mp3")

	frame := make([]byte, 417)
	frame[0] = 0xff
	frame[1] = 0xfb
	frame[2] = 0x90
	frame[3] = 0x00

	if err := os.WriteFile(path, frame, 0o600); err != nil {
		t.Fatalf("create file: %v", err)
	}
	return path
}

func TestOpen_NoHeaderGetsFreshContainer(t *testing.T) {
	path := createBareMP3(t, t.TempDir())

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	f.SetGenre("Pop")
	f.SetArtistList([]string{"Alice", "Bob"})
	if err := f.SetCanonicalArtists([]string{"Alice", "Bob"}); err != nil {
		t.Fatalf("SetCanonicalArtists() error: %v", err)
	}
	if err := f.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	f.Close()

	f, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer f.Close()

	if got := f.Genre(); got != "Pop" {
		t.Errorf("Genre() = %q, want %q", got, "Pop")
	}
	if want := []string{"Alice", "Bob"}; !reflect.DeepEqual(f.Artists(), want) {
		t.Errorf("Artists() = %v, want %v", f.Artists(), want)
	}
	if want := []string{"Alice", "Bob"}; !reflect.DeepEqual(f.CanonicalArtists(), want) {
		t.Errorf("CanonicalArtists() = %v, want %v", f.CanonicalArtists(), want)
	}
}

func TestOpen_StripsID3v22(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.mp3")

	// ID3v2.2 header, which the id3v2 library cannot parse
	id3v22Header := []byte{
		'I', 'D', '3',
		0x02, 0x00, // version 2.0
		0x00,                   // flags
		0x00, 0x00, 0x00, 0x0A, // size (syncsafe: 10 bytes)
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	mp3Frame := make([]byte, 417)
	mp3Frame[0] = 0xff
	mp3Frame[1] = 0xfb
	mp3Frame[2] = 0x90

	data := append(id3v22Header, mp3Frame...)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("create file: %v", err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	f.SetGenre("Rock")
	if err := f.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	f.Close()

	f, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer f.Close()
	if got := f.Genre(); got != "Rock" {
		t.Errorf("Genre() = %q, want %q", got, "Rock")
	}
}

func TestSetGenre_OverwritesPriorValue(t *testing.T) {
	path := createBareMP3(t, t.TempDir())

	for _, genre := range []string{"Jazz", "Pop"} {
		f, err := Open(path)
		if err != nil {
			t.Fatalf("Open() error: %v", err)
		}
		f.SetGenre(genre)
		if err := f.Save(); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
		f.Close()
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer f.Close()
	if got := f.Genre(); got != "Pop" {
		t.Errorf("Genre() = %q, want %q", got, "Pop")
	}
}

func TestSetCanonicalArtists_ReplacesNotAppends(t *testing.T) {
	path := createBareMP3(t, t.TempDir())

	for _, names := range [][]string{{"Alice"}, {"Alice", "Bob"}} {
		f, err := Open(path)
		if err != nil {
			t.Fatalf("Open() error: %v", err)
		}
		if err := f.SetCanonicalArtists(names); err != nil {
			t.Fatalf("SetCanonicalArtists() error: %v", err)
		}
		if err := f.Save(); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
		f.Close()
	}

	// Exactly one ARTISTS frame must remain, holding the latest list.
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("raw open error: %v", err)
	}
	defer tag.Close()

	count := 0
	for _, frame := range tag.GetFrames(tag.CommonID("User defined text information frame")) {
		if udt, ok := frame.(id3v2.UserDefinedTextFrame); ok && udt.Description == ArtistsFrameDescription {
			count++
		}
	}
	if count != 1 {
		t.Errorf("found %d ARTISTS frames, want 1", count)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer f.Close()
	if want := []string{"Alice", "Bob"}; !reflect.DeepEqual(f.CanonicalArtists(), want) {
		t.Errorf("CanonicalArtists() = %v, want %v", f.CanonicalArtists(), want)
	}
}

func TestSetArtist_JoinedDisplayIsSingleEntry(t *testing.T) {
	path := createBareMP3(t, t.TempDir())

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	f.SetArtist("Alice / Bob")
	if err := f.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	f.Close()

	f, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer f.Close()
	if want := []string{"Alice / Bob"}; !reflect.DeepEqual(f.Artists(), want) {
		t.Errorf("Artists() = %v, want %v", f.Artists(), want)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.mp3")); err == nil {
		t.Error("Open() on missing file succeeded, want error")
	}
}

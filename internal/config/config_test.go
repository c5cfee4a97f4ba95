package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// isolate points XDG and the working directory at empty temp dirs so
// no real user config leaks into the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg-config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "xdg-data"))
	xdg.Reload()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.RecentMax != 2 {
		t.Errorf("RecentMax = %d, want 2", cfg.RecentMax)
	}
	if cfg.JoinArtists {
		t.Error("JoinArtists = true, want false by default")
	}
	if cfg.DefaultGenre != "" {
		t.Errorf("DefaultGenre = %q, want empty", cfg.DefaultGenre)
	}
	if cfg.DefaultFolder != "" {
		t.Errorf("DefaultFolder = %q, want empty", cfg.DefaultFolder)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := isolate(t)

	content := `default_genre = "Pop"
join_artists = true
recent_max = 5
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DefaultGenre != "Pop" {
		t.Errorf("DefaultGenre = %q, want %q", cfg.DefaultGenre, "Pop")
	}
	if !cfg.JoinArtists {
		t.Error("JoinArtists = false, want true")
	}
	if cfg.RecentMax != 5 {
		t.Errorf("RecentMax = %d, want 5", cfg.RecentMax)
	}
}

func TestLoad_InvalidRecentMaxFallsBack(t *testing.T) {
	dir := isolate(t)

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("recent_max = -1\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.RecentMax != 2 {
		t.Errorf("RecentMax = %d, want default 2", cfg.RecentMax)
	}
}

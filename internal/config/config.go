// Package config loads genrefill settings from TOML config files.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"genrefill/internal/pathutil"
	"genrefill/internal/recent"
)

type Config struct {
	DefaultFolder string `koanf:"default_folder"` // suggested starting directory, empty means cwd
	DefaultGenre  string `koanf:"default_genre"`  // pre-filled genre input
	JoinArtists   bool   `koanf:"join_artists"`   // store multiple artists as one delimited string
	RecentMax     int    `koanf:"recent_max"`     // bound on the recent-directories list
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range configPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		RecentMax: recent.DefaultMax,
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.RecentMax <= 0 {
		cfg.RecentMax = recent.DefaultMax
	}
	cfg.DefaultFolder = pathutil.ExpandHome(cfg.DefaultFolder)

	return cfg, nil
}

func configPaths() []string {
	paths := []string{}

	// 1. XDG config dir (~/.config/genrefill/config.toml)
	if path, err := xdg.SearchConfigFile(filepath.Join("genrefill", "config.toml")); err == nil {
		paths = append(paths, path)
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"genrefill/internal/app"
	"genrefill/internal/apply"
	"genrefill/internal/config"
	"genrefill/internal/errmsg"
	"genrefill/internal/id3"
	"genrefill/internal/recent"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpLoadConfig, err))
		os.Exit(1)
	}

	// Recent-directory persistence is best-effort; run without it if
	// the data directory cannot be resolved.
	store, err := recent.Open()
	if err != nil {
		store = nil
	}

	applier := apply.New(func(path string) (apply.Container, error) {
		return id3.Open(path)
	})

	p := tea.NewProgram(app.New(cfg, store, applier), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

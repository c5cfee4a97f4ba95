// Package app implements the interactive front end. It owns the
// session state (selection, recent directories) and hands the actual
// work to the core packages; no tag logic lives here.
package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"genrefill/internal/apply"
	"genrefill/internal/config"
	"genrefill/internal/discover"
	"genrefill/internal/probe"
	"genrefill/internal/recent"
	"genrefill/internal/session"
)

// focusArea identifies which input currently receives keystrokes.
type focusArea int

const (
	focusGenre focusArea = iota
	focusArtist
	focusPath
	focusCount
)

// Model is the Bubble Tea model for the main screen.
type Model struct {
	cfg *config.Config

	genreInput  textinput.Model
	artistInput textinput.Model
	pathInput   textinput.Model
	focus       focusArea

	selection *session.Selection
	notes     map[string]string // per-entry current-tag preview, files only

	recentDirs  []string
	recentStore *recent.Store

	applier *apply.Applier
	join    bool

	log []string

	width  int
	height int
}

// New builds the initial model. store may be nil when persistence is
// unavailable; the session then runs with an in-memory list only.
func New(cfg *config.Config, store *recent.Store, applier *apply.Applier) Model {
	gi := textinput.New()
	gi.Placeholder = "Genre to apply"
	gi.CharLimit = 128
	gi.Width = 40
	gi.SetValue(cfg.DefaultGenre)
	gi.Focus()

	ai := textinput.New()
	ai.Placeholder = "Artists (comma/semicolon/slash separated, empty keeps existing)"
	ai.CharLimit = 256
	ai.Width = 60

	pi := textinput.New()
	pi.Placeholder = "File or folder path (paste dropped paths, enter to add)"
	pi.CharLimit = 1024
	pi.Width = 60

	var recents []string
	if store != nil {
		recents = store.Load()
	}

	return Model{
		cfg:         cfg,
		genreInput:  gi,
		artistInput: ai,
		pathInput:   pi,
		selection:   session.New(),
		notes:       make(map[string]string),
		recentDirs:  recents,
		recentStore: store,
		applier:     applier,
		join:        cfg.JoinArtists,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// addEntries resolves raw path strings into the selection, previews
// the current tags of added files and records added directories in
// the recent list.
func (m *Model) addEntries(raws []string) {
	added := m.selection.Add(raws)
	for _, path := range added {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			m.rememberDir(path)
			continue
		}
		if discover.IsAudioFile(path) {
			if genre, art := probe.Current(path); genre != "" || art != "" {
				m.notes[path] = fmt.Sprintf("%s | %s", orDash(genre), orDash(art))
			}
		}
	}
	if len(added) > 0 {
		m.logf("added %d entry(ies) to the selection", len(added))
	}
}

// rememberDir moves dir to the front of the recent list and persists
// the list best-effort.
func (m *Model) rememberDir(dir string) {
	m.recentDirs = recent.Remember(m.recentDirs, dir, m.cfg.RecentMax)
	if m.recentStore != nil {
		m.recentStore.Save(m.recentDirs)
	}
}

// runBatch drives one full run over the current selection.
func (m *Model) runBatch() {
	genre := m.genreInput.Value()
	artistText := m.artistInput.Value()
	if strings.TrimSpace(genre) == "" && strings.TrimSpace(artistText) == "" {
		m.logf("enter a genre or artists before running")
		return
	}
	if m.selection.Len() == 0 {
		m.logf("selection is empty")
		return
	}

	rep := m.applier.Run(m.selection.Paths(), genre, artistText, m.join)
	m.log = append(m.log, rep.Warnings...)
	if rep.Successes == 0 && len(rep.Outcomes) == 0 {
		m.logf("no audio files found in the selection")
		return
	}
	m.log = append(m.log, rep.Outcomes...)
	m.logf("finished: updated %d file(s)", rep.Successes)
}

func (m *Model) logf(format string, args ...any) {
	m.log = append(m.log, fmt.Sprintf(format, args...))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

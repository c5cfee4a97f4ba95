package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"genrefill/internal/pathutil"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInputs()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil

		case "shift+tab":
			m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, nil

		case "enter":
			if m.focus == focusPath {
				m.addEntries(pathutil.SplitDropped(m.pathInput.Value()))
				m.pathInput.SetValue("")
			} else {
				m.setFocus((m.focus + 1) % focusCount)
			}
			return m, nil

		case "ctrl+r":
			m.runBatch()
			return m, nil

		case "ctrl+l":
			m.selection.Clear()
			m.notes = make(map[string]string)
			m.logf("cleared selection")
			return m, nil

		case "ctrl+j":
			m.join = !m.join
			return m, nil

		case "alt+1":
			m.addRecent(0)
			return m, nil

		case "alt+2":
			m.addRecent(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusGenre:
		m.genreInput, cmd = m.genreInput.Update(msg)
	case focusArtist:
		m.artistInput, cmd = m.artistInput.Update(msg)
	case focusPath:
		m.pathInput, cmd = m.pathInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.genreInput.Blur()
	m.artistInput.Blur()
	m.pathInput.Blur()
	switch f {
	case focusGenre:
		m.genreInput.Focus()
	case focusArtist:
		m.artistInput.Focus()
	case focusPath:
		m.pathInput.Focus()
	}
}

// addRecent re-adds a recent directory to the selection by its index
// in the recent list.
func (m *Model) addRecent(idx int) {
	if idx < 0 || idx >= len(m.recentDirs) {
		return
	}
	m.addEntries([]string{m.recentDirs[idx]})
}

func (m *Model) resizeInputs() {
	w := m.width - 12
	if w > 80 {
		w = 80
	}
	if w < 20 {
		w = 20
	}
	m.genreInput.Width = w
	m.artistInput.Width = w
	m.pathInput.Width = w
}

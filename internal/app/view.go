package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Bold(true)
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const maxLogLines = 12

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("genrefill"))
	b.WriteString("\n\n")

	form := strings.Join([]string{
		labelStyle.Render("Genre  ") + " " + m.genreInput.View(),
		labelStyle.Render("Artists") + " " + m.artistInput.View(),
		labelStyle.Render("Add    ") + " " + m.pathInput.View(),
		dimStyle.Render("join-mode: " + onOff(m.join)),
	}, "\n")
	b.WriteString(panelStyle.Render(form))
	b.WriteString("\n")

	b.WriteString(panelStyle.Render(m.selectionView()))
	b.WriteString("\n")

	if len(m.recentDirs) > 0 {
		lines := []string{labelStyle.Render("Recent folders")}
		for i, dir := range m.recentDirs {
			lines = append(lines, fmt.Sprintf("alt+%d  %s", i+1, dir))
		}
		b.WriteString(panelStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(panelStyle.Render(m.logView()))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(
		"tab: next field | enter: add path | ctrl+r: run | ctrl+l: clear | ctrl+j: toggle join | esc: quit"))
	return b.String()
}

func (m Model) selectionView() string {
	paths := m.selection.Paths()
	header := labelStyle.Render(fmt.Sprintf("Selection (%d)", len(paths)))
	if len(paths) == 0 {
		return header + "\n" + dimStyle.Render("nothing selected")
	}
	lines := []string{header}
	for _, p := range paths {
		line := p
		if note, ok := m.notes[p]; ok {
			line += "  " + dimStyle.Render(note)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) logView() string {
	header := labelStyle.Render("Log")
	if len(m.log) == 0 {
		return header + "\n" + dimStyle.Render("no output yet")
	}
	start := 0
	if len(m.log) > maxLogLines {
		start = len(m.log) - maxLogLines
	}
	return header + "\n" + strings.Join(m.log[start:], "\n")
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

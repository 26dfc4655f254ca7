package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// View implements tea.Model.
func (m *Model) View() string {
	sections := make([]string, 0, 4)
	if header := m.menuHeader(); header != "" {
		sections = append(sections, m.fitWidth(styles.Header.Render(header)))
	}
	sections = append(sections, m.renderScreen())
	if status := m.statusLine(); status != "" {
		sections = append(sections, status)
	}
	if m.showFooter && !m.done {
		sections = append(sections, m.fitWidth(styles.Footer.Render(m.help.View(m.keys))))
	}
	view := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 {
		view = lipgloss.NewStyle().MaxWidth(m.width).Render(view)
	}
	return view
}

// renderScreen draws the last display snapshot inside the LCD frame.
func (m *Model) renderScreen() string {
	rows := make([]string, len(m.frame))
	for i, line := range m.frame {
		rows[i] = styles.Screen.Render(line)
	}
	return styles.Frame.Render(strings.Join(rows, "\n"))
}

func (m *Model) menuHeader() string {
	return strings.Join(m.controller.Path(), menuHeaderSeparator)
}

func (m *Model) statusLine() string {
	switch {
	case m.errMsg != "":
		return m.fitWidth(styles.Error.Render(fmt.Sprintf("Error: %s", m.errMsg)))
	case m.done && m.outcome.selected:
		return m.fitWidth(styles.Info.Render(fmt.Sprintf("Selected %s", m.outcome.value)))
	case m.done:
		return m.fitWidth(styles.Info.Render("Nothing selected"))
	case m.hidden:
		return m.fitWidth(styles.Info.Render("Display hidden, navigate to resume"))
	case m.query != "":
		return m.fitWidth(styles.Info.Render(fmt.Sprintf("Jump: %s", m.query)))
	}
	return ""
}

// fitWidth truncates styled text to the terminal width when it is known.
func (m *Model) fitWidth(text string) string {
	if m.width <= 0 || lipgloss.Width(text) <= m.width {
		return text
	}
	return truncate.StringWithTail(text, uint(m.width-1), "…")
}

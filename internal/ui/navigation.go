package ui

import (
	"time"

	"github.com/atomicstack/lcd-menu/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.Key.Press(keyMsg.String())
	if key.Matches(keyMsg, m.keys.Quit) {
		m.cancel()
		return tea.Quit
	}
	if m.done {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Previous):
		m.resetQuery()
		m.controller.Previous()
	case key.Matches(keyMsg, m.keys.Next):
		m.resetQuery()
		m.controller.Next()
	case key.Matches(keyMsg, m.keys.Select):
		m.resetQuery()
		m.controller.Select()
	case key.Matches(keyMsg, m.keys.Hide):
		m.resetQuery()
		m.controller.Hide()
		m.hidden = true
		m.syncScreen()
		return nil
	case keyMsg.Type == tea.KeyRunes:
		m.jump(string(keyMsg.Runes), time.Now())
	default:
		return nil
	}
	m.hidden = false
	m.syncScreen()
	return nil
}

// jump extends the type-ahead query and moves to the next matching item.
// A pause longer than jumpResetAfter starts a new query; input that matches
// nothing is dropped.
func (m *Model) jump(input string, now time.Time) {
	if input == "" {
		return
	}
	if now.Sub(m.lastJump) > jumpResetAfter {
		m.query = ""
	}
	m.lastJump = now
	prev := m.query
	m.query += input
	if m.controller.Jump(m.query) {
		return
	}
	if prev != "" && m.controller.Jump(input) {
		m.query = input
		return
	}
	m.query = prev
}

func (m *Model) resetQuery() {
	m.query = ""
	m.lastJump = time.Time{}
}

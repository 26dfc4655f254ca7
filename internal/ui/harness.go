package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model and starts its session.
func NewHarness(model *Model) *Harness {
	if model != nil {
		model.Start()
	}
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// Await delivers the session outcome to the model, waiting up to timeout.
// It reports whether the session finished in time.
func (h *Harness) Await(timeout time.Duration) bool {
	if h.model == nil {
		return false
	}
	select {
	case msg := <-h.model.results:
		h.Send(msg)
		return true
	case <-time.After(timeout):
		return false
	}
}

// Settle waits until the active menu is shown and ready for input.
func (h *Harness) Settle(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if h.model.controller.Ready() {
			h.model.syncScreen()
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

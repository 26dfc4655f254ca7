package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/lcd-menu/internal/display"
	"github.com/atomicstack/lcd-menu/internal/list"
	"github.com/atomicstack/lcd-menu/internal/menu"
	"github.com/atomicstack/lcd-menu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	MenuFile     string
	Width        int
	Height       int
	RollInterval time.Duration
	ShowFooter   bool
}

// Result is the outcome of a menu session.
type Result struct {
	Value    string
	Selected bool
}

// NewModel loads the menu definition and prepares the UI model bound to an
// emulated display of the configured size.
func NewModel(cfg Config) (*ui.Model, error) {
	nodes, err := menu.Load(cfg.MenuFile)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	screen := display.NewBuffer(cfg.Width, cfg.Height)
	controller := menu.NewController(screen, nodes, list.WithRollInterval(cfg.RollInterval))
	return ui.NewModel(controller, screen, cfg.ShowFooter), nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (Result, error) {
	model, err := NewModel(cfg)
	if err != nil {
		return Result{}, err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return Result{}, err
	}
	value, selected, err := model.Result()
	if err != nil && !errors.Is(err, context.Canceled) {
		return Result{}, err
	}
	return Result{Value: value, Selected: selected}, nil
}

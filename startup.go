package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atomicstack/lcd-menu/internal/config"
	"github.com/atomicstack/lcd-menu/internal/display"
	"github.com/atomicstack/lcd-menu/internal/list"
	"github.com/atomicstack/lcd-menu/internal/logging"
	"github.com/atomicstack/lcd-menu/internal/logging/events"
	"github.com/atomicstack/lcd-menu/internal/menu"
	"golang.org/x/term"
)

func traceStartup(cfg config.Config) {
	if !logging.TraceEnabled() {
		return
	}
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload describes the emulated display, the menu definition
// and the hosting terminal for the app.start trace entry.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	return map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"display":  resolveDisplay(cfg),
		"menu":     inspectMenuFile(cfg.App.MenuFile),
		"terminal": inspectTerminal(),
	}
}

type displayDetails struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	RollInterval string `json:"rollInterval"`
}

func resolveDisplay(cfg config.Config) displayDetails {
	d := displayDetails{
		Width:        cfg.App.Width,
		Height:       cfg.App.Height,
		RollInterval: list.DefaultRollInterval.String(),
	}
	if d.Width <= 0 {
		d.Width = display.DefaultWidth
	}
	if d.Height <= 0 {
		d.Height = display.DefaultHeight
	}
	if cfg.App.RollInterval > 0 {
		d.RollInterval = cfg.App.RollInterval.String()
	}
	return d
}

type menuFileDetails struct {
	Path     string    `json:"path"`
	Format   string    `json:"format,omitempty"`
	Bytes    int64     `json:"bytes,omitempty"`
	Modified time.Time `json:"modified,omitempty"`
	Entries  int       `json:"entries,omitempty"`
	Levels   int       `json:"levels,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// inspectMenuFile loads the definition once to report its shape. Load errors
// are recorded rather than returned; app.Run reports them to the user.
func inspectMenuFile(path string) menuFileDetails {
	details := menuFileDetails{
		Path:   path,
		Format: strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
	}
	info, err := os.Stat(path)
	if err != nil {
		details.Error = err.Error()
		return details
	}
	details.Bytes = info.Size()
	details.Modified = info.ModTime().UTC()
	nodes, err := menu.Load(path)
	if err != nil {
		details.Error = err.Error()
		return details
	}
	details.Entries, details.Levels = countNodes(nodes)
	return details
}

// countNodes returns the number of entries in the tree and its depth in menus.
func countNodes(nodes []menu.Node[string]) (entries, levels int) {
	deepest := 0
	for _, node := range nodes {
		entries++
		if node.IsBranch() {
			n, l := countNodes(node.Items)
			entries += n
			deepest = max(deepest, l)
		}
	}
	return entries, deepest + 1
}

type terminalDetails struct {
	Interactive bool   `json:"interactive"`
	Source      string `json:"source,omitempty"`
	Columns     int    `json:"columns,omitempty"`
	Rows        int    `json:"rows,omitempty"`
	Error       string `json:"error,omitempty"`
}

// inspectTerminal reports the size of the first standard descriptor attached to
// a terminal. The emulated display is drawn there.
func inspectTerminal() terminalDetails {
	for _, f := range []*os.File{os.Stdout, os.Stdin, os.Stderr} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		details := terminalDetails{Interactive: true, Source: f.Name()}
		if cols, rows, err := term.GetSize(fd); err == nil {
			details.Columns, details.Rows = cols, rows
		} else {
			details.Error = err.Error()
		}
		return details
	}
	return terminalDetails{}
}

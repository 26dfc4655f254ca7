package menu

import "errors"

var (
	// ErrSessionActive is returned by Show while another session is running.
	ErrSessionActive = errors.New("menu session already active")

	// ErrEmptyMenu indicates a definition without any items.
	ErrEmptyMenu = errors.New("menu has no items")

	// ErrBlankLabel indicates an item without text.
	ErrBlankLabel = errors.New("menu item has no text")

	// ErrUnsupportedFormat indicates a definition file with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported menu file format")
)

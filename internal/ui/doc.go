// Package ui contains the Bubble Tea program that emulates a character LCD in
// the terminal and drives a menu session with the keyboard.
//
// Message flow:
//   - Init starts the menu session on its own goroutine. The session blocks in
//     menu.Controller.Show until an item resolves it; the outcome arrives as a
//     sessionDoneMsg through waitForSession and ends the program.
//   - Key presses are routed through a typed handler registry to
//     navigation.go, which maps them onto the controller's Previous, Next,
//     Select and Hide calls or the type-ahead Jump.
//   - The rolling marquee writes to the display from its own ticker, so a
//     refreshMsg tick re-snapshots the display.Buffer whenever its revision
//     changes.
//
// State ownership:
//   - The display.Buffer is the only source of what is on screen; View never
//     renders menu items itself, it frames the buffer snapshot.
//   - Cursor, viewport and level stack live in internal/list and internal/menu.
package ui

package display

import (
	"strings"
	"sync"

	"go.uber.org/atomic"
)

// Buffer is an in-memory Display. Text printed past the last column is
// dropped, matching a physical LCD without line wrapping.
type Buffer struct {
	mu       sync.Mutex
	width    int
	height   int
	cells    [][]rune
	x, y     int
	revision atomic.Uint64
	clears   atomic.Uint64
}

// NewBuffer allocates a blank buffer. Non-positive sizes fall back to the defaults.
func NewBuffer(width, height int) *Buffer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	b := &Buffer{width: width, height: height}
	b.cells = make([][]rune, height)
	for i := range b.cells {
		b.cells[i] = blankRow(width)
	}
	return b
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) SetCursor(x, y int) {
	b.mu.Lock()
	b.x, b.y = x, y
	b.mu.Unlock()
}

func (b *Buffer) Print(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.y < 0 || b.y >= b.height {
		return
	}
	row := b.cells[b.y]
	for _, r := range text {
		if b.x >= b.width {
			break
		}
		if b.x >= 0 {
			row[b.x] = r
		}
		b.x++
	}
	b.revision.Inc()
}

func (b *Buffer) Clear() {
	b.mu.Lock()
	for i := range b.cells {
		b.cells[i] = blankRow(b.width)
	}
	b.x, b.y = 0, 0
	b.mu.Unlock()
	b.clears.Inc()
	b.revision.Inc()
}

// Lines returns a snapshot of every row, padded to the full width.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	lines := make([]string, len(b.cells))
	for i, row := range b.cells {
		lines[i] = string(row)
	}
	return lines
}

// Line returns row y with trailing blanks removed.
func (b *Buffer) Line(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= len(b.cells) {
		return ""
	}
	return strings.TrimRight(string(b.cells[y]), " ")
}

// String renders the buffer as newline separated rows.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Revision increases on every write and can be polled to detect changes.
func (b *Buffer) Revision() uint64 {
	return b.revision.Load()
}

// Clears counts Clear calls.
func (b *Buffer) Clears() uint64 {
	return b.clears.Load()
}

func blankRow(width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	return row
}

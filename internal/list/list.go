// Package list implements a single-level, scrollable, selectable list bound to
// a fixed-size character display.
package list

import (
	"sync"
	"time"

	"github.com/atomicstack/lcd-menu/internal/display"
	"github.com/atomicstack/lcd-menu/internal/text"
)

const (
	selectedPrefix = "> "
	itemPrefix     = "  "

	// DefaultRollInterval is the delay between marquee steps.
	DefaultRollInterval = 300 * time.Millisecond
)

// Item is an immutable label/value pair.
type Item[V any] struct {
	Label string
	Value V
}

// Option customises a List.
type Option func(*options)

type options struct {
	rollInterval time.Duration
}

// WithRollInterval overrides the marquee step interval. Non-positive values are ignored.
func WithRollInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.rollInterval = d
		}
	}
}

// List renders a window of items onto a display and resolves the selected
// value through the channel returned by Show.
type List[V any] struct {
	mu       sync.Mutex
	display  display.Display
	items    []Item[V]
	top      int
	selected int
	width    int
	height   int
	interval time.Duration
	pending  chan V
	roll     *rolling
}

// New binds items to d. The list keeps its own copy of items.
func New[V any](d display.Display, items []Item[V], opts ...Option) *List[V] {
	o := options{rollInterval: DefaultRollInterval}
	for _, opt := range opts {
		opt(&o)
	}
	width, height := display.Size(d)
	dup := make([]Item[V], len(items))
	copy(dup, items)
	return &List[V]{
		display:  d,
		items:    dup,
		width:    width,
		height:   height,
		interval: o.rollInterval,
	}
}

// Show resets the cursor to the first item, renders, and returns a channel
// that receives the selected value once, on the next Select. Calling Show
// again while a result is pending returns the same channel untouched.
func (l *List[V]) Show() <-chan V {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pending != nil {
		return l.pending
	}
	l.selected = 0
	l.top = 0
	l.pending = make(chan V, 1)
	l.renderLocked()
	return l.pending
}

// Previous moves the selection up, wrapping from the first item to the last.
func (l *List[V]) Previous() {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := len(l.items)
	if n == 0 {
		return
	}
	if l.selected == 0 {
		l.selected = n - 1
		l.top = n - l.height
		if l.top < 0 {
			l.top = 0
		}
	} else {
		l.selected--
		if l.top > l.selected {
			l.top = l.selected
		}
	}
	l.renderLocked()
}

// Next moves the selection down, wrapping from the last item to the first.
func (l *List[V]) Next() {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := len(l.items)
	if n == 0 {
		return
	}
	if l.selected == n-1 {
		l.selected = 0
		l.top = 0
	} else {
		l.selected++
		if l.top < l.selected+1-l.height {
			l.top = l.selected + 1 - l.height
		}
	}
	l.renderLocked()
}

// Seek moves the selection directly to index, scrolling as little as needed.
func (l *List[V]) Seek(index int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.items) {
		return
	}
	l.selected = index
	if l.top > index {
		l.top = index
	}
	if l.top < index+1-l.height {
		l.top = index + 1 - l.height
	}
	l.renderLocked()
}

// Select stops the marquee and resolves the pending Show with the selected value.
func (l *List[V]) Select() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopRollingLocked()
	if l.pending == nil || len(l.items) == 0 {
		return
	}
	l.pending <- l.items[l.selected].Value
	l.pending = nil
}

// Clear stops the marquee and blanks the display. A pending Show stays pending.
func (l *List[V]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopRollingLocked()
	l.display.Clear()
}

// Dismiss stops the marquee and drops a pending Show without resolving it,
// so the next Show starts fresh.
func (l *List[V]) Dismiss() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopRollingLocked()
	l.pending = nil
}

// Items returns a copy of the list items.
func (l *List[V]) Items() []Item[V] {
	l.mu.Lock()
	defer l.mu.Unlock()
	dup := make([]Item[V], len(l.items))
	copy(dup, l.items)
	return dup
}

// Len returns the number of items.
func (l *List[V]) Len() int {
	return len(l.items)
}

// Selected returns the item under the cursor.
func (l *List[V]) Selected() (Item[V], bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.items) == 0 {
		return Item[V]{}, false
	}
	return l.items[l.selected], true
}

// SelectedIndex returns the position of the cursor in Items.
func (l *List[V]) SelectedIndex() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selected
}

// Top returns the index of the first visible item.
func (l *List[V]) Top() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.top
}

// Width returns the resolved display width in characters.
func (l *List[V]) Width() int { return l.width }

// Height returns the resolved number of display rows.
func (l *List[V]) Height() int { return l.height }

// Pending reports whether a Show is waiting for Select.
func (l *List[V]) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending != nil
}

func (l *List[V]) renderLocked() {
	l.display.Clear()
	for i := 0; i < l.height; i++ {
		index := l.top + i
		if index >= len(l.items) {
			break
		}
		prefix := itemPrefix
		if index == l.selected {
			prefix = selectedPrefix
		}
		l.display.SetCursor(0, i)
		l.display.Print(prefix + text.Truncate(l.items[index].Label, l.width-len(prefix)))
	}
	l.rollSelectedLocked()
}

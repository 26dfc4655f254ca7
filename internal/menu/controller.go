package menu

import (
	"context"
	"sync"

	"github.com/atomicstack/lcd-menu/internal/display"
	"github.com/atomicstack/lcd-menu/internal/list"
	"github.com/atomicstack/lcd-menu/internal/logging/events"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Controller walks a menu tree, descending into nested menus and ascending
// through up items, until a payload is selected.
type Controller[T any] struct {
	display display.Display
	root    *Menu[T]

	mu      sync.Mutex
	active  *Menu[T]
	stack   []*Menu[T]
	running bool
}

// NewController builds the menu tree for nodes on d.
func NewController[T any](d display.Display, nodes []Node[T], opts ...list.Option) *Controller[T] {
	return &Controller[T]{display: d, root: New(d, nodes, opts...)}
}

// Root returns the top-level menu.
func (c *Controller[T]) Root() *Menu[T] {
	return c.root
}

// Show runs a session from the root menu. It returns the selected payload
// with ok set, or ok unset when the user ascended out of the root. If ctx
// ends first the session is abandoned and ctx.Err() is returned.
func (c *Controller[T]) Show(ctx context.Context) (value T, ok bool, err error) {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return value, false, ErrSessionActive
	}
	c.running = true
	c.stack = c.stack[:0]
	c.mu.Unlock()

	current := c.root
	for {
		result := c.activate(current)
		var v Value[T]
		select {
		case v = <-result:
			c.release(current)
		case <-ctx.Done():
			current.Dismiss()
			events.Menu.Cancel(ctx.Err())
			c.finish()
			return value, false, ctx.Err()
		}
		events.Menu.Select(current.Title(), selectedLabel(current), v.Kind.String())
		switch v.Kind {
		case KindSubmenu:
			depth := c.push(current)
			events.Menu.Descend(current.Title(), v.Submenu.Title(), depth)
			current = v.Submenu
		case KindUp:
			parent, depth := c.pop()
			if parent == nil {
				events.Menu.Finish(false, nil)
				c.finish()
				return value, false, nil
			}
			events.Menu.Ascend(current.Title(), parent.Title(), depth)
			current = parent
		default:
			events.Menu.Finish(true, v.Payload)
			c.finish()
			return v.Payload, true, nil
		}
	}
}

func (c *Controller[T]) activate(m *Menu[T]) <-chan Value[T] {
	c.mu.Lock()
	c.active = m
	depth := len(c.stack)
	c.mu.Unlock()
	events.Menu.Show(m.Title(), depth)
	return m.Show()
}

// release detaches m once its result has been taken, so navigation arriving
// before the next menu is shown is ignored rather than redrawing m.
func (c *Controller[T]) release(m *Menu[T]) {
	c.mu.Lock()
	if c.active == m {
		c.active = nil
	}
	c.mu.Unlock()
}

func (c *Controller[T]) push(m *Menu[T]) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stack = append(c.stack, m)
	return len(c.stack)
}

func (c *Controller[T]) pop() (*Menu[T], int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.stack) == 0 {
		return nil, 0
	}
	parent := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return parent, len(c.stack)
}

func (c *Controller[T]) finish() {
	c.display.Clear()
	c.mu.Lock()
	c.active = nil
	c.stack = c.stack[:0]
	c.running = false
	c.mu.Unlock()
}

func (c *Controller[T]) current() *Menu[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Previous moves the active menu's selection up. No-op without a session.
func (c *Controller[T]) Previous() {
	if m := c.current(); m != nil {
		m.Previous()
		events.Menu.Cursor(m.Title(), m.SelectedIndex(), m.Top())
	}
}

// Next moves the active menu's selection down. No-op without a session.
func (c *Controller[T]) Next() {
	if m := c.current(); m != nil {
		m.Next()
		events.Menu.Cursor(m.Title(), m.SelectedIndex(), m.Top())
	}
}

// Select resolves the active menu's selection. No-op without a session.
func (c *Controller[T]) Select() {
	if m := c.current(); m != nil {
		m.Select()
	}
}

// Hide blanks the display without resolving the pending navigation.
func (c *Controller[T]) Hide() {
	if m := c.current(); m != nil {
		m.Clear()
		events.Display.Hide(m.Title())
	}
}

// Jump moves the selection to the next item, after the current one, whose
// label fuzzy-matches query. It reports whether a match was found.
func (c *Controller[T]) Jump(query string) bool {
	m := c.current()
	if m == nil || query == "" {
		return false
	}
	items := m.Items()
	n := len(items)
	start := m.SelectedIndex()
	for step := 1; step <= n; step++ {
		idx := (start + step) % n
		if fuzzy.MatchNormalizedFold(query, items[idx].Label) {
			m.Seek(idx)
			events.Menu.Jump(m.Title(), query, idx)
			return true
		}
	}
	return false
}

// Active reports whether a session is running.
func (c *Controller[T]) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Ready reports whether the active menu is shown and waiting for Select.
func (c *Controller[T]) Ready() bool {
	m := c.current()
	return m != nil && m.Pending()
}

// Depth returns the number of parent menus above the active one.
func (c *Controller[T]) Depth() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.stack)
}

// Path returns the titles from the root to the active menu.
func (c *Controller[T]) Path() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return nil
	}
	path := make([]string, 0, len(c.stack)+1)
	for _, m := range c.stack {
		path = append(path, m.Title())
	}
	return append(path, c.active.Title())
}

func selectedLabel[T any](m *Menu[T]) string {
	if item, ok := m.Selected(); ok {
		return item.Label
	}
	return ""
}

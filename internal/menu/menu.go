package menu

import (
	"github.com/atomicstack/lcd-menu/internal/display"
	"github.com/atomicstack/lcd-menu/internal/list"
)

// UpLabel is the label of the item that returns to the parent menu.
const UpLabel = ".."

// RootTitle names the top-level menu in traces and breadcrumbs.
const RootTitle = "main menu"

// Node is one entry of a menu definition: a leaf carrying Value, or a branch
// carrying Items.
type Node[T any] struct {
	Text  string    `yaml:"text" toml:"text"`
	Value T         `yaml:"value,omitempty" toml:"value,omitempty"`
	Items []Node[T] `yaml:"items,omitempty" toml:"items,omitempty"`
}

// IsBranch reports whether the node opens a nested menu.
func (n Node[T]) IsBranch() bool {
	return len(n.Items) > 0
}

// Menu is a list whose values are payloads, nested menus, or the up marker.
type Menu[T any] struct {
	*list.List[Value[T]]
	title string
	root  bool
}

// New materialises nodes into a root menu bound to d. Branches become nested
// menus on the same display, each ending with an up item.
func New[T any](d display.Display, nodes []Node[T], opts ...list.Option) *Menu[T] {
	return build(d, RootTitle, nodes, true, opts)
}

func build[T any](d display.Display, title string, nodes []Node[T], root bool, opts []list.Option) *Menu[T] {
	items := make([]list.Item[Value[T]], 0, len(nodes)+1)
	for _, node := range nodes {
		if node.IsBranch() {
			sub := build(d, node.Text, node.Items, false, opts)
			items = append(items, list.Item[Value[T]]{Label: node.Text, Value: Submenu(sub)})
			continue
		}
		items = append(items, list.Item[Value[T]]{Label: node.Text, Value: Payload(node.Value)})
	}
	if !root {
		items = append(items, list.Item[Value[T]]{Label: UpLabel, Value: Up[T]()})
	}
	return &Menu[T]{
		List:  list.New(d, items, opts...),
		title: title,
		root:  root,
	}
}

// Title returns the label this menu was opened from.
func (m *Menu[T]) Title() string {
	return m.title
}

// IsRoot reports whether m is the top-level menu.
func (m *Menu[T]) IsRoot() bool {
	return m.root
}

package menu

// Kind tags the variant held by a Value.
type Kind int

const (
	KindPayload Kind = iota
	KindSubmenu
	KindUp
)

func (k Kind) String() string {
	switch k {
	case KindPayload:
		return "payload"
	case KindSubmenu:
		return "submenu"
	case KindUp:
		return "up"
	default:
		return "unknown"
	}
}

// Value is what selecting a menu item yields.
type Value[T any] struct {
	Kind    Kind
	Payload T
	Submenu *Menu[T]
}

// Payload wraps a terminal application value.
func Payload[T any](v T) Value[T] {
	return Value[T]{Kind: KindPayload, Payload: v}
}

// Submenu wraps a nested menu.
func Submenu[T any](m *Menu[T]) Value[T] {
	return Value[T]{Kind: KindSubmenu, Submenu: m}
}

// Up is the marker for returning to the parent menu.
func Up[T any]() Value[T] {
	return Value[T]{Kind: KindUp}
}

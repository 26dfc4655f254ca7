// Package display describes the character display the menu renders onto and
// provides an in-memory implementation used by the terminal front-end and tests.
package display

const (
	DefaultWidth  = 16
	DefaultHeight = 2
)

// Display is a cursor-addressed character surface such as an HD44780 LCD.
// Width and Height may return 0 when the size is not known.
type Display interface {
	Width() int
	Height() int
	SetCursor(x, y int)
	Print(text string)
	Clear()
}

// Size resolves the dimensions of d, substituting the defaults for unknown values.
func Size(d Display) (width, height int) {
	width, height = DefaultWidth, DefaultHeight
	if d == nil {
		return width, height
	}
	if w := d.Width(); w > 0 {
		width = w
	}
	if h := d.Height(); h > 0 {
		height = h
	}
	return width, height
}

package text

import (
	"strings"
	"unicode"
)

// Ellipsis is appended to labels cut by Truncate.
const Ellipsis = "..."

// Truncate shortens s to at most max runes using the default ellipsis.
func Truncate(s string, max int) string {
	return TruncateWith(s, max, Ellipsis)
}

// TruncateWith trims surrounding whitespace from s and, when the result is
// longer than max runes, cuts it so that the cut plus ellipsis fits in max.
// A max smaller than the ellipsis yields a clipped ellipsis.
func TruncateWith(s string, max int, ellipsis string) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= max {
		return string(runes)
	}
	tail := []rune(ellipsis)
	if len(tail) >= max {
		return string(tail[:max])
	}
	cut := strings.TrimRightFunc(string(runes[:max-len(tail)]), unicode.IsSpace)
	return cut + string(tail)
}

package text

import (
	"testing"
	"unicode/utf8"
)

func TestTruncateKeepsShortText(t *testing.T) {
	if got := Truncate("  Settings ", 14); got != "Settings" {
		t.Fatalf("expected trimmed text, got %q", got)
	}
	if got := Truncate("exactly-14-chr", 14); got != "exactly-14-chr" {
		t.Fatalf("expected text of exact length kept, got %q", got)
	}
}

func TestTruncateCutsAndAppendsEllipsis(t *testing.T) {
	got := Truncate("Network configuration", 14)
	if got != "Network con..." {
		t.Fatalf("expected %q, got %q", "Network con...", got)
	}
	if utf8.RuneCountInString(got) != 14 {
		t.Fatalf("expected 14 runes, got %d", utf8.RuneCountInString(got))
	}
}

func TestTruncateStripsWhitespaceBeforeEllipsis(t *testing.T) {
	got := Truncate("Display    brightness", 12)
	if got != "Display..." {
		t.Fatalf("expected %q, got %q", "Display...", got)
	}
}

func TestTruncateClampsSmallLimits(t *testing.T) {
	if got := Truncate("overflowing", 2); got != ".." {
		t.Fatalf("expected clipped ellipsis, got %q", got)
	}
	if got := Truncate("overflowing", 0); got != "" {
		t.Fatalf("expected empty result for zero limit, got %q", got)
	}
	if got := TruncateWith("overflowing", 5, "~"); got != "over~" {
		t.Fatalf("expected custom ellipsis, got %q", got)
	}
}

func TestTruncateIsIdempotentAndBounded(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"  padded label  ",
		"Network configuration",
		"word word word word word",
		"tabs\tand\tspaces   trailing   ",
		"ünïcödé characters are runes",
	}
	for _, s := range inputs {
		for limit := len(Ellipsis); limit <= 24; limit++ {
			once := Truncate(s, limit)
			if utf8.RuneCountInString(once) > limit {
				t.Fatalf("Truncate(%q, %d) = %q exceeds limit", s, limit, once)
			}
			if twice := Truncate(once, limit); twice != once {
				t.Fatalf("Truncate not idempotent for %q at %d: %q then %q", s, limit, once, twice)
			}
		}
	}
}

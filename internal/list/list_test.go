package list

import (
	"testing"
	"time"

	"github.com/atomicstack/lcd-menu/internal/display"
	"github.com/atomicstack/lcd-menu/internal/testutil"
)

// tick runs one marquee step synchronously.
func (l *List[V]) tick() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.roll == nil {
		return false
	}
	l.stepLocked(l.roll)
	return true
}

func newTestList(buf *display.Buffer, labels ...string) *List[int] {
	items := make([]Item[int], len(labels))
	for i, label := range labels {
		items[i] = Item[int]{Label: label, Value: i + 1}
	}
	return New(buf, items, WithRollInterval(time.Hour))
}

func TestShowRendersFirstRowsWithPrefixes(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf, "alpha", "beta", "gamma")
	l.Show()
	if got := buf.Line(0); got != "> alpha" {
		t.Fatalf("expected selected first row, got %q", got)
	}
	if got := buf.Line(1); got != "  beta" {
		t.Fatalf("expected plain second row, got %q", got)
	}
}

func TestShowToleratesListShorterThanDisplay(t *testing.T) {
	buf := display.NewBuffer(16, 4)
	l := newTestList(buf, "only")
	l.Show()
	if got := buf.Line(0); got != "> only" {
		t.Fatalf("expected single row, got %q", got)
	}
	for i := 1; i < 4; i++ {
		if got := buf.Line(i); got != "" {
			t.Fatalf("expected blank row %d, got %q", i, got)
		}
	}
}

func TestShowTruncatesLongLabels(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf, "short", "Network configuration")
	l.Show()
	if got := buf.Line(1); got != "  Network con..." {
		t.Fatalf("expected truncated label, got %q", got)
	}
}

func TestPreviousWrapsToLastItem(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf, "a", "b", "c", "d", "e")
	l.Show()
	l.Previous()
	if l.SelectedIndex() != 4 {
		t.Fatalf("expected selection 4, got %d", l.SelectedIndex())
	}
	if l.Top() != 3 {
		t.Fatalf("expected top 3, got %d", l.Top())
	}
	if got := buf.Line(1); got != "> e" {
		t.Fatalf("expected last item selected on second row, got %q", got)
	}
}

func TestPreviousWrapClampsTopWhenItemsFit(t *testing.T) {
	buf := display.NewBuffer(16, 4)
	l := newTestList(buf, "a", "b")
	l.Show()
	l.Previous()
	if l.SelectedIndex() != 1 || l.Top() != 0 {
		t.Fatalf("expected selection 1 top 0, got %d/%d", l.SelectedIndex(), l.Top())
	}
}

func TestNextWrapsToFirstItem(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf, "a", "b", "c")
	l.Show()
	l.Next()
	l.Next()
	if l.Top() != 1 {
		t.Fatalf("expected top 1 after scrolling down, got %d", l.Top())
	}
	l.Next()
	if l.SelectedIndex() != 0 || l.Top() != 0 {
		t.Fatalf("expected wrap to 0/0, got %d/%d", l.SelectedIndex(), l.Top())
	}
}

func TestPreviousScrollsUp(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf, "a", "b", "c", "d")
	l.Show()
	l.Previous() // 3, top 2
	l.Previous() // 2, top 2
	l.Previous() // 1, top 1
	if l.SelectedIndex() != 1 || l.Top() != 1 {
		t.Fatalf("expected 1/1, got %d/%d", l.SelectedIndex(), l.Top())
	}
	if got := buf.Line(0); got != "> b" {
		t.Fatalf("expected selected b on first row, got %q", got)
	}
}

func TestViewportInvariantHolds(t *testing.T) {
	buf := display.NewBuffer(16, 3)
	l := newTestList(buf, "a", "b", "c", "d", "e", "f", "g")
	l.Show()
	moves := "nnnnppnnnnnnnppppppppppnpnpnnnnnnnnnnnppp"
	for i, m := range moves {
		if m == 'n' {
			l.Next()
		} else {
			l.Previous()
		}
		top, sel := l.Top(), l.SelectedIndex()
		if sel < 0 || sel >= 7 {
			t.Fatalf("step %d: selection %d out of range", i, sel)
		}
		if top > sel || sel > top+l.Height()-1 {
			t.Fatalf("step %d: viewport invariant broken top=%d selected=%d", i, top, sel)
		}
	}
}

func TestSeekKeepsSelectionVisible(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf, "a", "b", "c", "d", "e")
	l.Show()
	l.Seek(3)
	if l.SelectedIndex() != 3 || l.Top() != 2 {
		t.Fatalf("expected 3/2, got %d/%d", l.SelectedIndex(), l.Top())
	}
	l.Seek(1)
	if l.SelectedIndex() != 1 || l.Top() != 1 {
		t.Fatalf("expected 1/1, got %d/%d", l.SelectedIndex(), l.Top())
	}
	l.Seek(9)
	if l.SelectedIndex() != 1 {
		t.Fatalf("expected out of range seek ignored, got %d", l.SelectedIndex())
	}
}

func TestSelectResolvesShowOnce(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf, "a", "b", "c")
	result := l.Show()
	l.Next()
	l.Select()
	select {
	case v := <-result:
		if v != 2 {
			t.Fatalf("expected value 2, got %d", v)
		}
	default:
		t.Fatalf("expected result after select")
	}
	if l.Pending() {
		t.Fatalf("expected no pending result after select")
	}
	l.Select()
	select {
	case v := <-result:
		t.Fatalf("expected a single resolution, got extra %d", v)
	default:
	}
}

func TestShowIsIdempotentWhilePending(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf, "a", "b", "c")
	first := l.Show()
	l.Next()
	second := l.Show()
	if first != second {
		t.Fatalf("expected the same pending channel")
	}
	if l.SelectedIndex() != 1 {
		t.Fatalf("expected cursor kept at 1, got %d", l.SelectedIndex())
	}
}

func TestShowAfterSelectResetsCursor(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf, "a", "b", "c")
	l.Show()
	l.Next()
	l.Next()
	l.Select()
	l.Show()
	if l.SelectedIndex() != 0 || l.Top() != 0 {
		t.Fatalf("expected reset to 0/0, got %d/%d", l.SelectedIndex(), l.Top())
	}
}

func TestSelectWithoutShowIsSafe(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf, "a")
	l.Select()
	if l.Pending() {
		t.Fatalf("expected nothing pending")
	}
}

func TestEmptyListNavigationIsNoOp(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf)
	l.Show()
	l.Next()
	l.Previous()
	l.Select()
	if _, ok := l.Selected(); ok {
		t.Fatalf("expected no selected item")
	}
	if !l.Pending() {
		t.Fatalf("expected empty list to stay pending")
	}
}

func TestClearKeepsPendingResult(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf, "a", "Network configuration")
	result := l.Show()
	l.Next()
	l.Clear()
	if l.Rolling() {
		t.Fatalf("expected marquee stopped by clear")
	}
	if buf.Line(0) != "" || buf.Line(1) != "" {
		t.Fatalf("expected cleared display, got %q", buf.String())
	}
	l.Select()
	if v := <-result; v != 2 {
		t.Fatalf("expected value 2 after clear, got %d", v)
	}
}

func TestMarqueeThreshold(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	exact := newTestList(buf, "fourteen chars")
	exact.Show()
	if exact.Rolling() {
		t.Fatalf("expected no marquee for label that fits exactly")
	}
	over := newTestList(buf, "fifteen chars!!")
	over.Show()
	if !over.Rolling() {
		t.Fatalf("expected marquee for label one character too long")
	}
	over.Select()
	if over.Rolling() {
		t.Fatalf("expected select to stop the marquee")
	}
}

func TestMarqueeScrollsAfterInitialPause(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf, "Network configuration", "b")
	l.Show()
	initial := buf.Line(0)
	l.tick()
	if got := buf.Line(0); got != initial {
		t.Fatalf("expected first tick to hold, got %q", got)
	}
	l.tick()
	if got := buf.Line(0); got != "> etwork configu" {
		t.Fatalf("expected window shifted by one, got %q", got)
	}
	l.tick()
	if got := buf.Line(0); got != "> twork configur" {
		t.Fatalf("expected window shifted by two, got %q", got)
	}
	// Offsets -3 through -22 complete one revolution.
	for i := 0; i < 20; i++ {
		l.tick()
	}
	if got := buf.Line(0); got != "> Network config" {
		t.Fatalf("expected wrap back to label start, got %q", got)
	}
	l.tick()
	if got := buf.Line(0); got != "> etwork configu" {
		t.Fatalf("expected marquee to continue after wrap, got %q", got)
	}
	if got := buf.Line(1); got != "  b" {
		t.Fatalf("expected other rows untouched, got %q", got)
	}
}

func TestMarqueeTracksSelectedRow(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf, "a", "b", "Network configuration")
	l.Show()
	l.Next()
	l.Next()
	l.tick()
	l.tick()
	if got := buf.Line(1); got != "> etwork configu" {
		t.Fatalf("expected marquee on second row, got %q", got)
	}
	if got := buf.Line(0); got != "  b" {
		t.Fatalf("expected first row untouched, got %q", got)
	}
}

func TestRenderReplacesMarquee(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf, "Network configuration", "Display brightness level")
	l.Show()
	first := l.roll
	l.Next()
	if l.roll == nil || l.roll == first {
		t.Fatalf("expected a fresh marquee after re-render")
	}
	select {
	case <-first.stop:
	default:
		t.Fatalf("expected previous marquee stopped")
	}
}

func TestMarqueeRunsOnTicker(t *testing.T) {
	buf := display.NewBuffer(16, 1)
	items := []Item[string]{{Label: "Network configuration", Value: "net"}}
	l := New(buf, items, WithRollInterval(5*time.Millisecond))
	l.Show()
	defer l.Clear()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if buf.Line(0) != "> Network con..." {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected ticker to move the marquee, still %q", buf.Line(0))
}

func TestDismissDropsPendingResult(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf, "a", "b")
	first := l.Show()
	l.Next()
	l.Dismiss()
	if l.Pending() {
		t.Fatalf("expected pending result dropped")
	}
	second := l.Show()
	if first == second {
		t.Fatalf("expected a new channel after dismiss")
	}
	if l.SelectedIndex() != 0 {
		t.Fatalf("expected cursor reset by fresh show, got %d", l.SelectedIndex())
	}
}

func TestScrolledViewportGolden(t *testing.T) {
	buf := display.NewBuffer(16, 2)
	l := newTestList(buf, "Status", "Network configuration", "Reboot", "Shutdown")
	l.Show()
	l.Next()
	l.Next()
	testutil.AssertGolden(t, "list_scrolled.golden", testutil.Screen(buf.Lines()))
}

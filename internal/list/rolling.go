package list

import "time"

const rollingPadding = " "

// rolling is the marquee state for the selected row.
type rolling struct {
	text      []rune
	available int
	row       int
	offset    int
	minOffset int
	stop      chan struct{}
}

func (l *List[V]) rollSelectedLocked() {
	l.stopRollingLocked()
	if len(l.items) == 0 {
		return
	}
	available := l.width - len(selectedPrefix)
	label := []rune(l.items[l.selected].Label)
	if len(label) <= available {
		return
	}
	padding := []rune(rollingPadding)
	buf := make([]rune, 0, 2*len(label)+len(padding))
	buf = append(buf, label...)
	buf = append(buf, padding...)
	buf = append(buf, label...)
	r := &rolling{
		text:      buf,
		available: available,
		row:       l.selected - l.top,
		minOffset: -(len(label) + len(padding)),
		stop:      make(chan struct{}),
	}
	l.roll = r
	go l.runRolling(r, l.interval)
}

func (l *List[V]) runRolling(r *rolling, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			if l.roll == r {
				l.stepLocked(r)
			}
			l.mu.Unlock()
		}
	}
}

// stepLocked advances the marquee by one tick. A zero offset prints nothing,
// so the label holds still for the first tick before it starts moving.
func (l *List[V]) stepLocked(r *rolling) {
	if r.offset != 0 {
		start := -r.offset
		end := start + r.available
		if end > len(r.text) {
			end = len(r.text)
		}
		l.display.SetCursor(len(selectedPrefix), r.row)
		l.display.Print(string(r.text[start:end]))
		if r.offset == r.minOffset {
			r.offset = 0
		}
	}
	r.offset--
}

func (l *List[V]) stopRollingLocked() {
	if l.roll == nil {
		return
	}
	close(l.roll.stop)
	l.roll = nil
}

// Rolling reports whether a marquee is active.
func (l *List[V]) Rolling() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.roll != nil
}

//go:build !tinygo

package hal

import "time"

const hostTickDur = time.Millisecond

// hostTime turns wall-clock time between steps into millisecond ticks.
type hostTime struct {
	ch  chan uint64
	seq uint64

	now  func() time.Time
	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step emits the ticks elapsed since the previous call. The first call emits
// first ticks so a fresh stream is never empty.
func (t *hostTime) step(first uint64) {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.emit(first)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now
	ticks := uint64(t.acc / hostTickDur)
	t.acc %= hostTickDur
	t.emit(ticks)
}

func (t *hostTime) emit(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}

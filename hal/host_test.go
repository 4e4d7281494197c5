//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestLoggerLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.WriteLineString("one")
	l.WriteLineBytes([]byte("two"))
	if got := buf.String(); got != "one\ntwo\n" {
		t.Fatalf("log = %q, want %q", got, "one\ntwo\n")
	}
}

func TestLoggerConcurrentLinesStayWhole(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				l.WriteLineString("abcdefgh")
			}
		}()
	}
	wg.Wait()
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if line != "abcdefgh" {
			t.Fatalf("interleaved line %q", line)
		}
	}
}

func TestNewDefaults(t *testing.T) {
	fb := New(0, 0).Display().Framebuffer()
	if fb.Width() != DefaultWidth || fb.Height() != DefaultHeight {
		t.Fatalf("size = %dx%d, want %dx%d", fb.Width(), fb.Height(), DefaultWidth, DefaultHeight)
	}
	if fb.StrideBytes() != DefaultWidth*2 || len(fb.Buffer()) != DefaultWidth*DefaultHeight*2 {
		t.Fatalf("stride %d, len %d", fb.StrideBytes(), len(fb.Buffer()))
	}
}

func TestFramebufferPresent(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	fb.ClearRGB(0xFF, 0, 0)

	snap := make([]byte, len(fb.buf))
	if n := fb.snapshotRGB565(snap); n != 0 || snap[0] != 0 {
		t.Fatalf("snapshot before Present = %d, %#x", n, snap[0])
	}
	if err := fb.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if n := fb.snapshotRGB565(snap); n != 1 || !bytes.Equal(snap, fb.buf) {
		t.Fatalf("snapshot after Present = %d, %x", n, snap)
	}
}

func TestImage(t *testing.T) {
	fb := newHostFramebuffer(3, 2)
	fb.ClearRGB(0, 0xFF, 0)
	img, err := Image(fb)
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}
	if got := img.RGBAAt(2, 1); got.R != 0 || got.G != 0xFF || got.B != 0 || got.A != 0xFF {
		t.Fatalf("pixel = %v, want green", got)
	}
	if _, err := Image(nil); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("Image(nil) error = %v", err)
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	for _, c := range [][3]uint8{{0, 0, 0}, {0xFF, 0xFF, 0xFF}, {0xFF, 0, 0}, {0, 0xFF, 0}, {0, 0, 0xFF}} {
		r, g, b := rgb888From565(rgb565(c[0], c[1], c[2]))
		if r != c[0] || g != c[1] || b != c[2] {
			t.Fatalf("round trip %v = %d %d %d", c, r, g, b)
		}
	}
}

func TestRunHeadlessTicks(t *testing.T) {
	h := newHost(8, 8, &bytes.Buffer{})
	steps := 0
	done := false
	cfg := HeadlessConfig{Ticks: 3, Done: func(HAL) error { done = true; return nil }}
	err := runHeadless(context.Background(), h, func() error { steps++; return nil }, time.Millisecond, cfg)
	if err != nil {
		t.Fatalf("runHeadless() error = %v", err)
	}
	if steps != 3 || !done {
		t.Fatalf("steps = %d, done = %v, want 3, true", steps, done)
	}
}

func TestRunHeadlessQuit(t *testing.T) {
	h := newHost(8, 8, &bytes.Buffer{})
	steps := 0
	step := func() error {
		steps++
		if steps == 2 {
			return ErrQuit
		}
		return nil
	}
	if err := runHeadless(context.Background(), h, step, time.Millisecond, HeadlessConfig{}); err != nil {
		t.Fatalf("runHeadless() error = %v", err)
	}
	if steps != 2 {
		t.Fatalf("steps = %d, want 2", steps)
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	h := newHost(8, 8, &bytes.Buffer{})
	boom := errors.New("boom")
	err := runHeadless(context.Background(), h, func() error { return boom }, time.Millisecond, HeadlessConfig{})
	if !errors.Is(err, boom) {
		t.Fatalf("runHeadless() error = %v, want boom", err)
	}
}

func TestRunHeadlessContext(t *testing.T) {
	h := newHost(8, 8, &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := runHeadless(ctx, h, nil, time.Hour, HeadlessConfig{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("runHeadless() error = %v, want context.Canceled", err)
	}
}

func TestHostTimeTicks(t *testing.T) {
	ht := newHostTime()
	ht.step(1)
	select {
	case v := <-ht.Ticks():
		if v != 1 {
			t.Fatalf("first tick = %d, want 1", v)
		}
	default:
		t.Fatalf("no tick after first step")
	}
}

func TestHostTimeAccumulates(t *testing.T) {
	ht := newHostTime()
	clock := time.Unix(0, 0)
	ht.now = func() time.Time { return clock }

	ht.step(1)
	clock = clock.Add(2500 * time.Microsecond)
	ht.step(1)
	clock = clock.Add(600 * time.Microsecond)
	ht.step(1)

	var got []uint64
	for len(ht.ch) > 0 {
		got = append(got, <-ht.ch)
	}
	// 1 initial tick, 2 for 2.5ms, 1 for the carried 0.5ms + 0.6ms.
	if len(got) != 4 || got[3] != 4 {
		t.Fatalf("ticks = %v, want [1 2 3 4]", got)
	}
}

//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width, Height int
	Hz            int
	Ticks         uint64 // stop after this many steps; 0 runs until ctx is done

	// Done, if set, is called with the HAL after the last step, e.g. to
	// snapshot the framebuffer.
	Done func(HAL) error
}

// RunHeadless drives the app's step function from a ticker without opening a
// window. A step returning ErrQuit ends the run cleanly.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := New(cfg.Width, cfg.Height).(*hostHAL)
	return runHeadless(ctx, h, newApp(h), d, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, step func() error, d time.Duration, cfg HeadlessConfig) error {
	t := time.NewTicker(d)
	defer t.Stop()

	finish := func() error {
		if cfg.Done != nil {
			return cfg.Done(h)
		}
		return nil
	}

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return finish()
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return finish()
			}
		}
	}
}

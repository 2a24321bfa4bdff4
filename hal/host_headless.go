package hal

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Width   int
	Height  int
	Hz      int
	Ticks   uint64

	// SpinDX, SpinDY is a drag replayed every tick with the primary button held.
	SpinDX, SpinDY float64

	// Snapshot, if set, receives the last presented frame as PNG on exit.
	Snapshot string
}

// RunHeadless runs the viewer without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	wc := WindowConfig{Width: cfg.Width, Height: cfg.Height}.withDefaults()
	h := newHostHAL(wc.Width, wc.Height, &scriptedPointer{dx: cfg.SpinDX, dy: cfg.SpinDY}, os.Stdout)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	err := runTicks(ctx, h, step, d, cfg.Ticks)
	if cfg.Snapshot != "" {
		if serr := writeSnapshot(h.fb, cfg.Snapshot); serr != nil && err == nil {
			err = serr
		}
	}
	return err
}

func runTicks(ctx context.Context, h *hostHAL, step func() error, d time.Duration, ticks uint64) error {
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.ptr.poll()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if ticks > 0 && tick >= ticks {
				return nil
			}
		}
	}
}

func writeSnapshot(fb *hostFramebuffer, path string) error {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	fb.snapshotRGBA(img, make([]byte, len(fb.buf)))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	return f.Close()
}

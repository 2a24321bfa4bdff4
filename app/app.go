package app

import (
	"fmt"
	"image/color"

	"cubeview/cube"
	"cubeview/cubegl"
	"cubeview/hal"
	"cubeview/internal/buildinfo"
)

// Config holds the viewer settings fixed at startup.
type Config struct {
	Camera      cubegl.Camera
	Sensitivity float64 // degrees per pixel of drag
	Background  cubegl.Color
	HUD         bool
}

func DefaultConfig() Config {
	return Config{
		Camera:      cubegl.DefaultCamera(),
		Sensitivity: 0.3,
		Background:  cubegl.Black,
	}
}

func (c Config) Validate() error {
	if err := c.Camera.Validate(); err != nil {
		return err
	}
	if c.Sensitivity < 0 {
		return fmt.Errorf("sensitivity %g must not be negative", c.Sensitivity)
	}
	return nil
}

type viewer struct {
	cfg   Config
	log   hal.Logger
	fb    hal.Framebuffer
	ptr   hal.Pointer
	scene *cubegl.Scene

	target *cubegl.RGB565Target
	orient cubegl.Orientation
	drag   bool
	frames uint64
}

// New builds the viewer and returns its per-frame step.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	v, err := newViewer(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return guard(v, v.step)
}

func newViewer(h hal.HAL, cfg Config) (*viewer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	v := &viewer{
		cfg:   cfg,
		log:   h.Logger(),
		scene: cubegl.NewScene(cube.NewBody().Meshes(), cfg.Camera),
	}
	if disp := h.Display(); disp != nil {
		v.fb = disp.Framebuffer()
	}
	if v.fb == nil || v.fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("framebuffer: %w", hal.ErrNotImplemented)
	}
	if in := h.Input(); in != nil {
		v.ptr = in.Pointer()
	}
	v.target = &cubegl.RGB565Target{
		Buf:    v.fb.Buffer(),
		Stride: v.fb.StrideBytes(),
		W:      v.fb.Width(),
		H:      v.fb.Height(),
	}

	v.logf("cubeview: %s fov=%g distance=%g size=%dx%d meshes=%d",
		buildinfo.String(), cfg.Camera.FOV, cfg.Camera.Distance,
		v.target.W, v.target.H, len(v.scene.Meshes()))
	return v, nil
}

func (v *viewer) step() error {
	v.input()
	v.render()
	v.frames++
	return v.fb.Present()
}

// input folds this frame's pointer sample into the orientation. Only a drag with
// the primary button held turns the view.
func (v *viewer) input() {
	if v.ptr == nil {
		return
	}
	s := v.ptr.State()
	if s.Primary {
		v.orient = cubegl.Advance(v.orient, cubegl.PointerDelta(s.DX, s.DY, v.cfg.Sensitivity))
		v.drag = true
	}
	if s.Released && v.drag {
		v.drag = false
		v.logf("orbit: pitch=%.1f yaw=%.1f", v.orient.Pitch, v.orient.Yaw)
	}
}

func (v *viewer) render() {
	v.target.Clear(v.cfg.Background)
	items := v.scene.Draw(v.orient, v.target.W, v.target.H)
	cubegl.Render(v.target, items)

	if v.cfg.HUD {
		drawLines(v.target, 4, 2, []string{
			fmt.Sprintf("pitch %+.1f  yaw %+.1f", v.orient.Pitch, v.orient.Yaw),
			fmt.Sprintf("faces %d  frame %d", len(items), v.frames),
			"drag to orbit",
		}, color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF})
	}
}

func (v *viewer) logf(format string, args ...any) {
	if v.log == nil {
		return
	}
	v.log.WriteLineString(fmt.Sprintf(format, args...))
}

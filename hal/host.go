package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int
	Height int
	Scale  int // window pixels per framebuffer pixel
	TPS    int
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return c
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	ptr    pointerSource
}

// pointerSource is a Pointer that is advanced once per frame by the runner.
type pointerSource interface {
	Pointer
	poll()
}

// New returns a host HAL with a width×height framebuffer.
// Zero sizes fall back to 640×480.
func New(width, height int) HAL {
	cfg := WindowConfig{Width: width, Height: height}.withDefaults()
	return newHostHAL(cfg.Width, cfg.Height, newHostPointer(), os.Stdout)
}

func newHostHAL(width, height int, ptr pointerSource, logOut io.Writer) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: logOut},
		fb:     newHostFramebuffer(width, height),
		ptr:    ptr,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{ptr: h.ptr} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	ptr Pointer
}

func (in hostInput) Pointer() Pointer { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// scriptedPointer replays a fixed drag every frame. It drives the headless runner.
type scriptedPointer struct {
	dx, dy float64
	state  PointerState
}

func (p *scriptedPointer) State() PointerState { return p.state }

func (p *scriptedPointer) poll() {
	held := p.dx != 0 || p.dy != 0
	p.state = PointerState{Primary: held, DX: p.dx, DY: p.dy}
}

package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a pixel buffer plus a "present" hook.
//
// Buffer is the back buffer the app draws into; Present publishes it to the display.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// PointerState is the pointer sample for one frame.
type PointerState struct {
	// Primary reports whether the primary button is held.
	Primary bool
	// Released is set on the frame the primary button goes up.
	Released bool
	// DX, DY is the motion since the previous sample, in framebuffer pixels.
	DX, DY float64
}

// Pointer provides one sample per frame.
type Pointer interface {
	State() PointerState
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Pointer() Pointer
}

// HAL is the only contact point between the viewer and the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

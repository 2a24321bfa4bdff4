//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostPointer samples the mouse. Motion is reported relative to the previous
// poll, in framebuffer pixels (the window layout is the framebuffer size).
type hostPointer struct {
	lastX, lastY int
	seen         bool
	state        PointerState
}

func newHostPointer() pointerSource { return &hostPointer{} }

func (p *hostPointer) State() PointerState { return p.state }

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	var dx, dy int
	if p.seen {
		dx, dy = x-p.lastX, y-p.lastY
	}
	p.lastX, p.lastY, p.seen = x, y, true

	p.state = PointerState{
		Primary:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		DX:       float64(dx),
		DY:       float64(dy),
	}
}

//go:build !cgo

package hal

type idlePointer struct{}

func newHostPointer() pointerSource { return idlePointer{} }

func (idlePointer) State() PointerState { return PointerState{} }
func (idlePointer) poll()               {}

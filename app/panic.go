package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"cubeview/cubegl"
)

// guard wraps step so a panic is logged, painted on the framebuffer and returned as
// an error instead of tearing down the host loop mid-frame.
func guard(v *viewer, step func() error) func() error {
	return func() (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			stack := string(debug.Stack())
			v.logf("cubeview panic: %v", r)
			for _, line := range strings.Split(stack, "\n") {
				if line != "" {
					v.logf("%s", line)
				}
			}
			v.paintPanic(r, stack)
			err = fmt.Errorf("panic: %v", r)
		}()
		return step()
	}
}

func (v *viewer) paintPanic(r any, stack string) {
	if v.target == nil || v.fb == nil {
		return
	}
	v.target.Clear(cubegl.RGB(0xFF, 0xFF, 0xFF))

	lines := []string{"cubeview panic:", fmt.Sprintf("%v", r), "stack:"}
	for _, line := range strings.Split(stack, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	drawLines(v.target, 0, 0, lines, color.RGBA{A: 0xFF})
	_ = v.fb.Present()
}

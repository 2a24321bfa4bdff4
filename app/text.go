package app

import (
	"image/color"
	"unicode/utf8"

	"cubeview/cubegl"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var textFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// fbDisplay adapts the render target to the tinyfont display contract.
type fbDisplay struct {
	t *cubegl.RGB565Target
}

var _ drivers.Displayer = fbDisplay{}

func (d fbDisplay) Size() (x, y int16) {
	if d.t == nil {
		return 0, 0
	}
	return int16(d.t.W), int16(d.t.H)
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.t == nil {
		return
	}
	d.t.SetPixel(int(x), int(y), cubegl.RGB(c.R, c.G, c.B))
}

func (d fbDisplay) Display() error { return nil }

// drawLines writes lines top-down starting at (x, y), one font line each. Lines
// longer than the target are wrapped by character count.
func drawLines(t *cubegl.RGB565Target, x, y int16, lines []string, fg color.RGBA) {
	d := fbDisplay{t: t}
	lineH := int16(textFont.GetYAdvance())
	if lineH <= 0 {
		lineH = 12
	}
	_, cellW := tinyfont.LineWidth(textFont, "0")
	cols := int16(1)
	if cellW > 0 {
		cols = (int16(t.W) - x) / int16(cellW)
	}

	baseline := y + lineH
	for _, line := range lines {
		for {
			if baseline > int16(t.H) {
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, textFont, x, baseline, chunk, fg)
			baseline += lineH
			if rest == "" {
				break
			}
			line = rest
		}
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}

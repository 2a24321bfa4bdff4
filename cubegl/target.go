package cubegl

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// Sink consumes a depth-ordered draw list, one call per fill or outline.
type Sink interface {
	FillPolygon(pts []Point, c Color)
	StrokePolygon(pts []Point, c Color, width int)
}

// Target is a pixel surface that can act as a Sink.
//
// Implementations clip out-of-bounds coordinates.
type Target interface {
	Sink
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

type pixelSetter interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
}

// RGB565Target renders into a little-endian RGB565 buffer.
//
// Callers provide the backing buffer and layout (stride).
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) Clear(c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 || t.W <= 0 || t.H <= 0 {
		return
	}
	p := c.RGB565()
	lo, hi := byte(p), byte(p>>8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	p := c.RGB565()
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

func (t *RGB565Target) FillPolygon(pts []Point, c Color) { fillPolygon(t, pts, c) }

func (t *RGB565Target) StrokePolygon(pts []Point, c Color, width int) {
	strokePolygon(t, pts, c, width)
}

// RGBATarget renders into an image.RGBA.
type RGBATarget struct {
	Img *image.RGBA
}

func NewRGBATarget(w, h int) *RGBATarget {
	return &RGBATarget{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *RGBATarget) Size() (w, h int) {
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *RGBATarget) Clear(c Color) {
	b := t.Img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t.Img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
}

func (t *RGBATarget) SetPixel(x, y int, c Color) {
	b := t.Img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return
	}
	t.Img.SetRGBA(b.Min.X+x, b.Min.Y+y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
}

func (t *RGBATarget) FillPolygon(pts []Point, c Color) { fillPolygon(t, pts, c) }

func (t *RGBATarget) StrokePolygon(pts []Point, c Color, width int) {
	strokePolygon(t, pts, c, width)
}

// fillPolygon fills pts with the even-odd rule, sampling at pixel centers.
// A trailing point equal to the first is allowed.
func fillPolygon(t pixelSetter, pts []Point, c Color) {
	n := len(pts)
	if n < 3 {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	y0 := clampInt(int(math.Floor(minY)), 0, h-1)
	y1 := clampInt(int(math.Ceil(maxY)), 0, h-1)

	xs := make([]float64, 0, n)
	for y := y0; y <= y1; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for i := 0; i < n; i++ {
			a, b := pts[i], pts[(i+1)%n]
			if (a.Y <= yc && yc < b.Y) || (b.Y <= yc && yc < a.Y) {
				xs = append(xs, a.X+(yc-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			xa := int(math.Ceil(xs[i] - 0.5))
			xb := int(math.Ceil(xs[i+1]-0.5)) - 1
			xa = clampInt(xa, 0, w)
			xb = clampInt(xb, -1, w-1)
			for x := xa; x <= xb; x++ {
				t.SetPixel(x, y, c)
			}
		}
	}
}

// strokePolygon draws every edge of pts with a width×width square brush.
func strokePolygon(t pixelSetter, pts []Point, c Color, width int) {
	if len(pts) < 2 {
		return
	}
	if width < 1 {
		width = 1
	}
	for i := 0; i+1 < len(pts); i++ {
		drawLine(t, round(pts[i].X), round(pts[i].Y), round(pts[i+1].X), round(pts[i+1].Y), c, width)
	}
}

func drawLine(t pixelSetter, x0, y0, x1, y1 int, c Color, width int) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		stamp(t, x0, y0, c, width)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func stamp(t pixelSetter, x, y int, c Color, width int) {
	lo := -(width - 1) / 2
	for oy := lo; oy < lo+width; oy++ {
		for ox := lo; ox < lo+width; ox++ {
			t.SetPixel(x+ox, y+oy, c)
		}
	}
}

func round(v float64) int {
	// Far-off points are clamped so line walks stay bounded.
	const lim = 1 << 16
	return int(math.Round(math.Max(-lim, math.Min(lim, v))))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

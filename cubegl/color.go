package cubegl

// Color is an RGB color in 8-bit channels.
type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

var (
	Black = RGB(0, 0, 0)
	Gray  = RGB(0xCC, 0xCC, 0xCC)
)

// RGB565 packs c as rrrrrggggggbbbbb.
func (c Color) RGB565() uint16 {
	return uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
}

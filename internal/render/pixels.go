package render

import "image/color"

// Palette maps the four life display codes (dead, alive, obstacle dead,
// obstacle alive) to colours.
var Palette = []color.RGBA{
	{R: 12, G: 12, B: 16, A: 255},
	{R: 235, G: 235, B: 225, A: 255},
	{R: 90, G: 40, B: 40, A: 255},
	{R: 230, G: 90, B: 60, A: 255},
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values
// beyond the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

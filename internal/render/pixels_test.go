package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFillPaletteRGBA(t *testing.T) {
	cells := []uint8{0, 1, 2, 3, 9}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, Palette)

	for i, c := range cells {
		want := Palette[min(int(c), len(Palette)-1)]
		got := color.RGBA{R: buf[4*i], G: buf[4*i+1], B: buf[4*i+2], A: buf[4*i+3]}
		require.Equal(t, want, got, "cell %d", i)
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	fillPaletteRGBA(buf, []uint8{1, 0}, nil)
	require.Equal(t, make([]byte, 8), buf)
}

func TestPaletteDistinguishesStates(t *testing.T) {
	seen := map[color.RGBA]bool{}
	for _, c := range Palette {
		seen[c] = true
	}
	require.Len(t, seen, 4)
}

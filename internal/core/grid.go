package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	Size
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	size := Size{W: w, H: h}.Clamp()
	return &ByteGrid{Size: size, data: make([]uint8, size.Area())}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Resize reallocates the buffer when the dimensions change. Contents are
// zeroed either way.
func (g *ByteGrid) Resize(w, h int) {
	size := Size{W: w, H: h}.Clamp()
	if size == g.Size {
		g.Clear()
		return
	}
	g.Size = size
	g.data = make([]uint8, size.Area())
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

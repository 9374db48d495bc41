package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int { return s.W * s.H }

// Contains reports whether (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Index returns the linear slice index for coordinates (x, y).
func (s Size) Index(x, y int) int { return y*s.W + x }

// Wrap applies toroidal wrapping to the provided coordinates. Offsets of any
// magnitude are folded back into range, not just -1 and W.
func (s Size) Wrap(x, y int) (int, int) {
	x = (x%s.W + s.W) % s.W
	y = (y%s.H + s.H) % s.H
	return x, y
}

// Clamp replaces non-positive dimensions with 1.
func (s Size) Clamp() Size {
	if s.W <= 0 {
		s.W = 1
	}
	if s.H <= 0 {
		s.H = 1
	}
	return s
}

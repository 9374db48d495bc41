package life

// DefaultDensity is the living-cell probability used when randomizing.
const DefaultDensity = 0.3

type offset struct{ dx, dy int }

type pattern struct {
	name  string
	cells []offset
}

var patterns = []pattern{
	{"glider", []offset{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
	{"blinker", []offset{{0, 1}, {1, 1}, {2, 1}}},
	{"beacon", []offset{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}}},
	{"toad", []offset{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}}},
	{"lwss", []offset{{1, 0}, {4, 0}, {0, 1}, {0, 2}, {4, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}}},
	{"pulsar", []offset{
		{2, 0}, {3, 0}, {4, 0}, {8, 0}, {9, 0}, {10, 0},
		{0, 2}, {5, 2}, {7, 2}, {12, 2},
		{0, 3}, {5, 3}, {7, 3}, {12, 3},
		{0, 4}, {5, 4}, {7, 4}, {12, 4},
		{2, 5}, {3, 5}, {4, 5}, {8, 5}, {9, 5}, {10, 5},
		{2, 7}, {3, 7}, {4, 7}, {8, 7}, {9, 7}, {10, 7},
		{0, 8}, {5, 8}, {7, 8}, {12, 8},
		{0, 9}, {5, 9}, {7, 9}, {12, 9},
		{0, 10}, {5, 10}, {7, 10}, {12, 10},
		{2, 12}, {3, 12}, {4, 12}, {8, 12}, {9, 12}, {10, 12},
	}},
	{"pentadecathlon", []offset{
		{1, 0}, {1, 1}, {0, 2}, {2, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {0, 7}, {2, 7}, {1, 8}, {1, 9},
	}},
	{"glider_gun", []offset{
		{0, 4}, {0, 5}, {1, 4}, {1, 5},
		{10, 4}, {10, 5}, {10, 6}, {11, 3}, {11, 7}, {12, 2}, {12, 8}, {13, 2}, {13, 8},
		{14, 5}, {15, 3}, {15, 7}, {16, 4}, {16, 5}, {16, 6}, {17, 5},
		{20, 2}, {20, 3}, {20, 4}, {21, 2}, {21, 3}, {21, 4}, {22, 1}, {22, 5},
		{24, 0}, {24, 1}, {24, 5}, {24, 6},
		{34, 2}, {34, 3}, {35, 2}, {35, 3},
	}},
	{"block", []offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	{"beehive", []offset{{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {2, 2}}},
	{"loaf", []offset{{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {3, 2}, {2, 3}}},
	{"boat", []offset{{0, 0}, {1, 0}, {0, 1}, {2, 1}, {1, 2}}},
	{"r_pentomino", []offset{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}},
	{"diehard", []offset{{6, 0}, {0, 1}, {1, 1}, {1, 2}, {5, 2}, {6, 2}, {7, 2}}},
	{"acorn", []offset{{1, 0}, {3, 1}, {0, 2}, {1, 2}, {4, 2}, {5, 2}, {6, 2}}},
}

// Patterns lists the names accepted by PlacePattern in catalogue order.
func Patterns() []string {
	names := make([]string, len(patterns))
	for i, p := range patterns {
		names[i] = p.name
	}
	return names
}

func lookupPattern(name string) ([]offset, bool) {
	for _, p := range patterns {
		if p.name == name {
			return p.cells, true
		}
	}
	return nil, false
}

// PlacePattern stamps a named pattern with its top-left corner at (x, y).
// Toric grids wrap the offsets; bounded grids drop those falling outside.
// It reports false, and places nothing, for unknown names.
func (g *Grid) PlacePattern(name string, x, y int) bool {
	cells, ok := lookupPattern(name)
	if !ok {
		return false
	}
	for _, o := range cells {
		px, py := x+o.dx, y+o.dy
		if g.toric {
			px, py = g.size.Wrap(px, py)
		} else if !g.size.Contains(px, py) {
			continue
		}
		g.cells[g.size.Index(px, py)].SetAlive(true)
	}
	return true
}

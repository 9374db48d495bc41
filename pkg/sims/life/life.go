package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"life-ca/internal/core"
)

// fallbackWorkers is used when the hardware parallelism cannot be detected.
const fallbackWorkers = 4

// Grid is a width×height field of cells advanced by a Rule. Edges are either
// bounded (outside cells count as dead) or toric (coordinates wrap).
type Grid struct {
	size     core.Size
	cells    []Cell
	toric    bool
	parallel bool
	workers  int
	rule     Rule
	display  *core.ByteGrid
}

// New returns an all-dead grid under the Classic rule. Non-positive
// dimensions are raised to 1.
func New(w, h int) *Grid {
	size := core.Size{W: w, H: h}.Clamp()
	return &Grid{
		size:    size,
		cells:   make([]Cell, size.Area()),
		rule:    NewRule(Classic),
		display: core.NewByteGrid(size.W, size.H),
	}
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return g.size }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.size.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.size.H }

// Toric reports whether edges wrap.
func (g *Grid) Toric() bool { return g.toric }

// SetToric switches between bounded and wraparound edges.
func (g *Grid) SetToric(enabled bool) { g.toric = enabled }

// Parallel reports whether generations are computed in row bands.
func (g *Grid) Parallel() bool { return g.parallel }

// SetParallel enables the banded generation pass.
func (g *Grid) SetParallel(enabled bool) { g.parallel = enabled }

// SetWorkers overrides the number of row bands used by the parallel pass.
// Zero restores hardware detection.
func (g *Grid) SetWorkers(n int) {
	if n < 0 {
		n = 0
	}
	g.workers = n
}

// Rule returns the grid's own copy of its rule.
func (g *Grid) Rule() Rule { return g.rule }

// SetRule replaces the transition rule.
func (g *Grid) SetRule(r Rule) { g.rule = r }

// Cell returns the cell at (x, y) for direct editing.
func (g *Grid) Cell(x, y int) (*Cell, error) {
	if !g.size.Contains(x, y) {
		return nil, &IndexError{X: x, Y: y, Width: g.size.W, Height: g.size.H}
	}
	return &g.cells[g.size.Index(x, y)], nil
}

// State returns the committed state at (x, y).
func (g *Grid) State(x, y int) (State, error) {
	c, err := g.Cell(x, y)
	if err != nil {
		return Dead, err
	}
	return c.State(), nil
}

// SetState overwrites the state at (x, y).
func (g *Grid) SetState(x, y int, s State) error {
	c, err := g.Cell(x, y)
	if err != nil {
		return err
	}
	c.Set(s)
	return nil
}

// SetAlive sets liveness at (x, y), keeping the obstacle flag.
func (g *Grid) SetAlive(x, y int, alive bool) error {
	c, err := g.Cell(x, y)
	if err != nil {
		return err
	}
	c.SetAlive(alive)
	return nil
}

// ToggleAlive flips liveness at (x, y).
func (g *Grid) ToggleAlive(x, y int) error {
	c, err := g.Cell(x, y)
	if err != nil {
		return err
	}
	c.ToggleAlive()
	return nil
}

// ToggleObstacle flips the obstacle flag at (x, y).
func (g *Grid) ToggleObstacle(x, y int) error {
	c, err := g.Cell(x, y)
	if err != nil {
		return err
	}
	c.ToggleObstacle()
	return nil
}

func (g *Grid) aliveAt(x, y int) bool {
	return g.cells[g.size.Index(x, y)].current.IsAlive()
}

// CountLivingNeighbors counts living cells in the Moore neighbourhood of
// (x, y). Bounded grids treat outside cells as dead.
func (g *Grid) CountLivingNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if g.toric {
				nx, ny = g.size.Wrap(nx, ny)
			} else if !g.size.Contains(nx, ny) {
				continue
			}
			if g.aliveAt(nx, ny) {
				count++
			}
		}
	}
	return count
}

// ComputeNextGeneration evaluates the rule for every cell into its pending
// slot. Committed states are not touched until ApplyNextGeneration.
func (g *Grid) ComputeNextGeneration() {
	if g.parallel {
		g.computeParallel()
		return
	}
	g.computeRows(0, g.size.H)
}

func (g *Grid) computeRows(start, end int) {
	w := g.size.W
	for y := start; y < end; y++ {
		for x := 0; x < w; x++ {
			c := &g.cells[y*w+x]
			c.pending = g.rule.NextState(c.current, g.CountLivingNeighbors(x, y))
		}
	}
}

// computeParallel splits the rows into contiguous bands, one per worker.
// Bands read committed states anywhere but write pending slots only inside
// their own rows.
func (g *Grid) computeParallel() {
	bands := g.workerCount()
	if bands > g.size.H {
		bands = g.size.H
	}
	rows := g.size.H / bands

	var eg errgroup.Group
	for i := 0; i < bands; i++ {
		start := i * rows
		end := start + rows
		if i == bands-1 {
			end = g.size.H
		}
		eg.Go(func() error {
			g.computeRows(start, end)
			return nil
		})
	}
	_ = eg.Wait()
}

func (g *Grid) workerCount() int {
	if g.workers > 0 {
		return g.workers
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return fallbackWorkers
}

// ApplyNextGeneration commits every pending state. Obstacles keep theirs.
func (g *Grid) ApplyNextGeneration() {
	for i := range g.cells {
		g.cells[i].Apply()
	}
}

// Step advances the grid by one generation.
func (g *Grid) Step() {
	g.ComputeNextGeneration()
	g.ApplyNextGeneration()
}

// Cells returns the display code (0..3, the extended file encoding) of every
// cell in row-major order. The slice is reused between calls.
func (g *Grid) Cells() []uint8 {
	if g.display.Size != g.size {
		g.display.Resize(g.size.W, g.size.H)
	}
	buf := g.display.Cells()
	for i := range g.cells {
		buf[i] = uint8(g.cells[i].current)
	}
	return buf
}

// Randomize sets every non-obstacle cell alive with probability p.
func (g *Grid) Randomize(rng *core.RNG, p float64) {
	for i := range g.cells {
		if g.cells[i].IsObstacle() {
			continue
		}
		g.cells[i].SetAlive(rng.Chance(p))
	}
}

// Reset randomizes the board at the default density using the provided seed.
func (g *Grid) Reset(seed int64) {
	g.Randomize(core.NewRNG(seed), DefaultDensity)
}

// Clear kills every non-obstacle cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		if !g.cells[i].IsObstacle() {
			g.cells[i].SetAlive(false)
		}
	}
}

// ClearObstacles drops the obstacle flag everywhere, keeping liveness.
func (g *Grid) ClearObstacles() {
	for i := range g.cells {
		g.cells[i].SetObstacle(false)
	}
}

// Resize replaces the contents with an all-dead field of the new size.
func (g *Grid) Resize(w, h int) {
	g.size = core.Size{W: w, H: h}.Clamp()
	g.cells = make([]Cell, g.size.Area())
}

// CopyFrom copies dimensions and cell states from other. Rule and edge
// settings are kept.
func (g *Grid) CopyFrom(other *Grid) {
	if g.size != other.size {
		g.size = other.size
		g.cells = make([]Cell, other.size.Area())
	}
	copy(g.cells, other.cells)
}

// Clone returns an independent copy including rule and edge settings.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		size:     g.size,
		cells:    make([]Cell, len(g.cells)),
		toric:    g.toric,
		parallel: g.parallel,
		workers:  g.workers,
		rule:     g.rule,
		display:  core.NewByteGrid(g.size.W, g.size.H),
	}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and the same living
// cells. Obstacle flags are not compared.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i := range g.cells {
		if !g.cells[i].Equal(other.cells[i]) {
			return false
		}
	}
	return true
}

// CountLivingCells counts living cells, obstacles included.
func (g *Grid) CountLivingCells() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].IsAlive() {
			n++
		}
	}
	return n
}

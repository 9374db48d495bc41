package life

// Cell holds the committed state and the state queued for the next
// generation. Rule evaluation only writes the pending slot; Apply commits it.
type Cell struct {
	current State
	pending State
}

// State returns the committed state.
func (c *Cell) State() State { return c.current }

// Pending returns the state queued by the last rule evaluation.
func (c *Cell) Pending() State { return c.pending }

// IsAlive reports the committed liveness.
func (c *Cell) IsAlive() bool { return c.current.IsAlive() }

// IsObstacle reports whether the committed state is an obstacle.
func (c *Cell) IsObstacle() bool { return c.current.IsObstacle() }

// SetPending queues s for the next Apply.
func (c *Cell) SetPending(s State) { c.pending = s }

// Apply commits the pending state. Obstacles keep their current state
// whatever was queued.
func (c *Cell) Apply() {
	if c.current.IsObstacle() {
		c.pending = c.current
		return
	}
	c.current = c.pending
}

// Set replaces the committed state directly. The pending slot follows so a
// stray Apply cannot undo an edit.
func (c *Cell) Set(s State) {
	c.current = s
	c.pending = s
}

// SetAlive re-tags the cell keeping its obstacle flag.
func (c *Cell) SetAlive(alive bool) { c.Set(c.current.WithAlive(alive)) }

// SetObstacle re-tags the cell keeping its liveness.
func (c *Cell) SetObstacle(obstacle bool) { c.Set(c.current.WithObstacle(obstacle)) }

// ToggleAlive flips liveness.
func (c *Cell) ToggleAlive() { c.SetAlive(!c.current.IsAlive()) }

// ToggleObstacle flips the obstacle flag.
func (c *Cell) ToggleObstacle() { c.SetObstacle(!c.current.IsObstacle()) }

// Equal compares liveness only. Obstacle flags are ignored so cycle
// detection and file comparisons look at the living pattern alone.
func (c Cell) Equal(o Cell) bool { return c.current.IsAlive() == o.current.IsAlive() }

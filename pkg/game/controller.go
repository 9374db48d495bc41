// Package game drives a life grid through time: fixed-interval stepping,
// a short rewind history, and detection of still lifes and oscillators.
package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"life-ca/internal/core"
	"life-ca/pkg/codec"
	"life-ca/pkg/sims/life"
)

const tracerName = "life-ca/pkg/game"

// Controller owns a live grid, its recent history and the pause and
// stagnation state built on top of it.
type Controller struct {
	cfg Config

	grid     *life.Grid
	previous *life.Grid
	// history holds past generations, most recent first.
	history      []*life.Grid
	historyIndex int

	generation int
	running    bool
	paused     bool

	ticker      *core.FixedStep
	sinceChange time.Duration
	cycleLength int
	stagnant    bool
	reason      string

	rng    *core.RNG
	logger *log.Logger
	tracer trace.Tracer
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger routes controller logging to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer overrides the tracer used for batch runs and file access.
func WithTracer(t trace.Tracer) Option {
	return func(c *Controller) {
		if t != nil {
			c.tracer = t
		}
	}
}

// New returns a Controller over an all-dead grid.
func New(cfg Config, opts ...Option) *Controller {
	cfg = cfg.normalized()
	g := life.New(cfg.Width, cfg.Height)
	g.SetRule(cfg.Rule)
	g.SetToric(cfg.Toric)
	g.SetParallel(cfg.Parallel)

	c := &Controller{
		cfg:          cfg,
		grid:         g,
		previous:     g.Clone(),
		historyIndex: -1,
		running:      true,
		ticker:       core.NewFixedStep(cfg.UpdateInterval),
		rng:          core.NewRNG(cfg.Seed),
		logger:       log.Default(),
		tracer:       otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the active rule name.
func (c *Controller) Name() string { return c.grid.Rule().Name() }

// Size returns the live grid dimensions.
func (c *Controller) Size() core.Size { return c.grid.Size() }

// Cells exposes the display codes of the live grid.
func (c *Controller) Cells() []uint8 { return c.grid.Cells() }

// Grid returns the live grid for direct editing.
func (c *Controller) Grid() *life.Grid { return c.grid }

// Generation returns the number of forward steps taken.
func (c *Controller) Generation() int { return c.generation }

// CycleLength returns the period detected by the last step, 0 for none.
func (c *Controller) CycleLength() int { return c.cycleLength }

// Stagnant reports whether the controller stopped on a persistent cycle.
func (c *Controller) Stagnant() bool { return c.stagnant }

// StopReason describes why the controller became stagnant.
func (c *Controller) StopReason() string { return c.reason }

// TimeSinceLastChange returns how long the current cycle has persisted.
func (c *Controller) TimeSinceLastChange() time.Duration { return c.sinceChange }

// Running reports whether automatic stepping is enabled at all.
func (c *Controller) Running() bool { return c.running }

// SetRunning enables or disables automatic stepping.
func (c *Controller) SetRunning(running bool) { c.running = running }

// Paused reports the pause flag.
func (c *Controller) Paused() bool { return c.paused }

// SetPaused sets the pause flag.
func (c *Controller) SetPaused(paused bool) { c.paused = paused }

// TogglePause flips the pause flag.
func (c *Controller) TogglePause() { c.paused = !c.paused }

// Rule returns the live grid's rule.
func (c *Controller) Rule() life.Rule { return c.grid.Rule() }

// SetRule swaps the transition rule of the live grid.
func (c *Controller) SetRule(r life.Rule) {
	c.grid.SetRule(r)
	c.cfg.Rule = r
}

// UpdateInterval returns the time between automatic steps.
func (c *Controller) UpdateInterval() time.Duration { return c.ticker.Interval() }

// SetUpdateInterval changes the time between automatic steps. Non-positive
// values are ignored.
func (c *Controller) SetUpdateInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	c.ticker.SetInterval(d)
	c.cfg.UpdateInterval = d
}

// Update advances simulated time by dt, stepping whenever a full interval
// has accumulated, and pauses the controller once a detected cycle has
// persisted for the stagnation timeout.
func (c *Controller) Update(dt time.Duration) {
	if c.paused || !c.running || c.stagnant {
		return
	}
	if c.ticker.Advance(dt) {
		c.Step()
	}
	if c.cycleLength == 0 {
		return
	}
	c.sinceChange += dt
	if c.sinceChange >= c.cfg.StagnationTimeout {
		c.stagnant = true
		c.paused = true
		c.reason = stopReason(c.cycleLength)
		c.logger.Printf("generation %d: %s", c.generation, c.reason)
	}
}

func stopReason(cycle int) string {
	if cycle == 1 {
		return "stable"
	}
	return fmt.Sprintf("periodic with period %d", cycle)
}

// Step advances the live grid by one generation and runs cycle detection.
// It does nothing and returns false while browsing history.
func (c *Controller) Step() bool {
	if c.historyIndex != -1 {
		return false
	}
	c.pushHistory(c.grid.Clone())

	c.grid.ComputeNextGeneration()
	c.grid.ApplyNextGeneration()
	c.generation++

	c.cycleLength = c.detectCycle()
	if c.cycleLength == 0 {
		c.sinceChange = 0
	}
	c.previous.CopyFrom(c.grid)
	return true
}

// detectCycle compares the live grid with the previous generation (period
// 1) and with the k-th most recent history entry (period k).
func (c *Controller) detectCycle() int {
	if c.grid.Equal(c.previous) {
		return 1
	}
	for i, past := range c.history {
		if c.grid.Equal(past) {
			return i + 1
		}
	}
	return 0
}

func (c *Controller) pushHistory(g *life.Grid) {
	c.history = append([]*life.Grid{g}, c.history...)
	if len(c.history) > HistoryLimit {
		c.history = c.history[:HistoryLimit]
	}
}

// GoBackward shows the next older generation. The first call snapshots the
// live grid so GoForward can return to it. It returns false at the limit.
func (c *Controller) GoBackward() bool {
	if c.historyIndex == -1 {
		c.pushHistory(c.grid.Clone())
		c.historyIndex = 0
		c.grid.CopyFrom(c.history[0])
		return true
	}
	if c.historyIndex+1 >= len(c.history) || c.historyIndex+1 >= HistoryLimit {
		return false
	}
	c.historyIndex++
	c.grid.CopyFrom(c.history[c.historyIndex])
	return true
}

// GoForward shows the next newer generation, restoring the live grid when
// leaving history. It returns false when already live.
func (c *Controller) GoForward() bool {
	if c.historyIndex == -1 {
		return false
	}
	c.historyIndex--
	if c.historyIndex == -1 {
		c.grid.CopyFrom(c.history[0])
		c.history = c.history[1:]
		return true
	}
	c.grid.CopyFrom(c.history[c.historyIndex])
	return true
}

// CanGoForward reports whether GoForward would move.
func (c *Controller) CanGoForward() bool { return c.historyIndex > -1 }

// CanGoBackward reports whether GoBackward would move.
func (c *Controller) CanGoBackward() bool {
	if c.historyIndex == -1 {
		return true
	}
	return c.historyIndex+1 < len(c.history) && c.historyIndex+1 < HistoryLimit
}

// HistoryPosition returns 0 for the live generation and n when browsing n
// steps into the past.
func (c *Controller) HistoryPosition() int { return c.historyIndex + 1 }

// Browsing reports whether the live grid is frozen on a past generation.
func (c *Controller) Browsing() bool { return c.historyIndex != -1 }

// ResetStagnationTimer clears the cycle and stagnation state and takes the
// current grid as the comparison baseline.
func (c *Controller) ResetStagnationTimer() {
	c.sinceChange = 0
	c.stagnant = false
	c.cycleLength = 0
	c.reason = ""
	c.previous.CopyFrom(c.grid)
	c.ticker.Reset()
}

// ResetGenerationCount zeroes the counter and drops the history.
func (c *Controller) ResetGenerationCount() {
	c.generation = 0
	c.history = nil
	c.historyIndex = -1
	c.ResetStagnationTimer()
}

// Randomize fills non-obstacle cells alive with probability p. Values
// outside [0, 1] use the configured density.
func (c *Controller) Randomize(p float64) {
	if p < 0 || p > 1 {
		p = c.cfg.Density
	}
	c.grid.Randomize(c.rng, p)
	c.ResetStagnationTimer()
}

// Reset reseeds the generator and randomizes at the configured density.
func (c *Controller) Reset(seed int64) {
	c.rng = core.NewRNG(seed)
	c.ResetGenerationCount()
	c.Randomize(c.cfg.Density)
}

// Clear kills every non-obstacle cell.
func (c *Controller) Clear() {
	c.grid.Clear()
	c.ResetStagnationTimer()
}

// Load replaces the live grid with the contents of path. The generation
// counter and history restart.
func (c *Controller) Load(path string) error {
	_, span := c.tracer.Start(context.Background(), "game.Load",
		trace.WithAttributes(attribute.String("path", path)))
	defer span.End()

	if err := codec.Load(path, c.grid); err != nil {
		span.RecordError(err)
		c.logger.Printf("load %s: %v", path, err)
		return err
	}
	c.ResetGenerationCount()
	return nil
}

// Save writes the live grid to path in the format implied by its extension.
func (c *Controller) Save(path string) error {
	_, span := c.tracer.Start(context.Background(), "game.Save",
		trace.WithAttributes(attribute.String("path", path)))
	defer span.End()

	if err := codec.Save(path, c.grid); err != nil {
		span.RecordError(err)
		c.logger.Printf("save %s: %v", path, err)
		return err
	}
	return nil
}

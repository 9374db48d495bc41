package game

import (
	"time"

	"life-ca/pkg/sims/life"
)

// HistoryLimit is the number of past generations kept for rewind and cycle
// detection.
const HistoryLimit = 5

// Config controls a Controller.
type Config struct {
	Width  int
	Height int

	Rule     life.Rule
	Toric    bool
	Parallel bool

	// UpdateInterval is the simulated time between automatic steps.
	UpdateInterval time.Duration
	// StagnationTimeout is how long a detected cycle must persist before
	// the controller pauses itself.
	StagnationTimeout time.Duration

	Seed    int64
	Density float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:             80,
		Height:            60,
		Rule:              life.NewRule(life.Classic),
		UpdateInterval:    100 * time.Millisecond,
		StagnationTimeout: 30 * time.Second,
		Seed:              42,
		Density:           life.DefaultDensity,
	}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.UpdateInterval <= 0 {
		c.UpdateInterval = d.UpdateInterval
	}
	if c.StagnationTimeout <= 0 {
		c.StagnationTimeout = d.StagnationTimeout
	}
	if c.Density < 0 || c.Density > 1 {
		c.Density = d.Density
	}
	return c
}

package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"life-ca/internal/app"
	"life-ca/pkg/game"
	"life-ca/pkg/sims/life"
)

// config holds launcher settings. Environment values are read first and
// command-line flags override them.
type config struct {
	Width      int           `env:"GOL_WIDTH" envDefault:"80"`
	Height     int           `env:"GOL_HEIGHT" envDefault:"60"`
	Rule       string        `env:"GOL_RULE" envDefault:"classic"`
	Toric      bool          `env:"GOL_TORIC"`
	Parallel   bool          `env:"GOL_PARALLEL"`
	Interval   time.Duration `env:"GOL_INTERVAL" envDefault:"100ms"`
	Stagnation time.Duration `env:"GOL_STAGNATION" envDefault:"30s"`
	Seed       int64         `env:"GOL_SEED" envDefault:"42"`
	Density    float64       `env:"GOL_DENSITY" envDefault:"0.3"`
	Scale      int           `env:"GOL_SCALE" envDefault:"8"`
	TPS        int           `env:"GOL_TPS" envDefault:"60"`
	SavePath   string        `env:"GOL_SAVE" envDefault:"life_save.gol"`
	Load       string        `env:"GOL_LOAD"`

	Console bool
	Test    bool
}

func loadConfig() (*config, error) {
	cfg := &config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule name or B/S notation, e.g. highlife or B36/S23")
	fs.BoolVar(&c.Toric, "toric", c.Toric, "wrap the grid edges")
	fs.BoolVar(&c.Parallel, "parallel", c.Parallel, "compute generations on all cores")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.DurationVar(&c.Stagnation, "stagnation", c.Stagnation, "how long a cycle must persist before stopping")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomization")
	fs.Float64Var(&c.Density, "density", c.Density, "alive probability when randomizing")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.SavePath, "save", c.SavePath, "file used by the save and load keys")
	fs.StringVar(&c.Load, "load", c.Load, "grid file to open at startup")
	fs.BoolVar(&c.Console, "console", false, "batch mode: <file> <generations>")
	fs.BoolVar(&c.Test, "test", false, "comparison mode: <init> <expected> <generations>")
}

func (c *config) gameConfig() (game.Config, error) {
	rule, err := life.ParseRule(c.Rule)
	if err != nil {
		return game.Config{}, err
	}
	return game.Config{
		Width:             c.Width,
		Height:            c.Height,
		Rule:              rule,
		Toric:             c.Toric,
		Parallel:          c.Parallel,
		UpdateInterval:    c.Interval,
		StagnationTimeout: c.Stagnation,
		Seed:              c.Seed,
		Density:           c.Density,
	}, nil
}

func (c *config) appOptions() app.Options {
	return app.Options{Scale: c.Scale, TPS: c.TPS, Seed: c.Seed, SavePath: c.SavePath}
}

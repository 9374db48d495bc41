// Command rule-survey runs every built-in rule over a set of random soups
// and reports how each population evolves and when it settles.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"life-ca/pkg/game"
	"life-ca/pkg/sims/life"
)

type surveyConfig struct {
	Width       int     `env:"GOL_WIDTH" envDefault:"96"`
	Height      int     `env:"GOL_HEIGHT" envDefault:"96"`
	Density     float64 `env:"GOL_DENSITY" envDefault:"0.3"`
	Toric       bool    `env:"GOL_TORIC" envDefault:"true"`
	Generations int     `env:"GOL_SURVEY_GENERATIONS" envDefault:"500"`
	Seeds       int     `env:"GOL_SURVEY_SEEDS" envDefault:"8"`
	Workers     int     `env:"GOL_SURVEY_WORKERS"`
}

type scenario struct {
	rule life.Rule
	seed int64
}

type scenarioResult struct {
	scenario
	initial     int
	final       int
	peak        int
	settledAt   int
	cycleLength int
}

func (r scenarioResult) settled() bool { return r.settledAt > 0 }

func main() {
	cfg := surveyConfig{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}
	flag.IntVar(&cfg.Width, "width", cfg.Width, "grid width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "grid height")
	flag.Float64Var(&cfg.Density, "density", cfg.Density, "initial alive probability")
	flag.BoolVar(&cfg.Toric, "toric", cfg.Toric, "wrap the grid edges")
	flag.IntVar(&cfg.Generations, "generations", cfg.Generations, "generations to simulate per scenario")
	flag.IntVar(&cfg.Seeds, "seeds", cfg.Seeds, "soups per rule")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of worker goroutines (0 = one per CPU)")
	flag.Parse()

	var scenarios []scenario
	for _, rule := range life.Rules() {
		for s := 0; s < cfg.Seeds; s++ {
			scenarios = append(scenarios, scenario{rule: rule, seed: int64(1000 + s)})
		}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := message.NewPrinter(language.English)
	p.Printf("Surveying %d scenarios (%d workers, %d generations, %dx%d)\n",
		len(scenarios), workers, cfg.Generations, cfg.Width, cfg.Height)

	start := time.Now()
	results := survey(cfg, scenarios, workers)
	report(os.Stdout, p, results)
	p.Printf("\nelapsed %s\n", time.Since(start).Round(time.Millisecond))
}

// survey runs every scenario on a pool of workers and returns the results
// ordered by rule then seed.
func survey(cfg surveyConfig, scenarios []scenario, workers int) []scenarioResult {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(cfg, sc)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].rule.Kind() != all[j].rule.Kind() {
			return all[i].rule.Kind() < all[j].rule.Kind()
		}
		return all[i].seed < all[j].seed
	})
	return all
}

func runScenario(cfg surveyConfig, sc scenario) scenarioResult {
	ctrl := game.New(game.Config{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Rule:    sc.rule,
		Toric:   cfg.Toric,
		Seed:    sc.seed,
		Density: cfg.Density,
	}, game.WithLogger(log.New(io.Discard, "", 0)))
	ctrl.Randomize(cfg.Density)

	res := scenarioResult{scenario: sc}
	res.initial = ctrl.Grid().CountLivingCells()
	res.peak = res.initial
	for i := 0; i < cfg.Generations; i++ {
		ctrl.Step()
		res.peak = max(res.peak, ctrl.Grid().CountLivingCells())
		if c := ctrl.CycleLength(); c > 0 {
			res.settledAt = ctrl.Generation()
			res.cycleLength = c
			break
		}
	}
	res.final = ctrl.Grid().CountLivingCells()
	return res
}

func report(w io.Writer, p *message.Printer, results []scenarioResult) {
	var current life.RuleKind
	for i, res := range results {
		if i == 0 || res.rule.Kind() != current {
			current = res.rule.Kind()
			p.Fprintf(w, "\n%s (%s)\n", res.rule.Name(), res.rule.Notation())
		}
		outcome := "still changing"
		if res.settled() {
			outcome = p.Sprintf("settled at gen %d, period %d", res.settledAt, res.cycleLength)
		}
		p.Fprintf(w, "  seed %d: alive %d -> %d (peak %d), %s\n",
			res.seed, res.initial, res.final, res.peak, outcome)
	}
}

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"life-ca/pkg/sims/life"
)

func smallSurvey() surveyConfig {
	return surveyConfig{Width: 16, Height: 16, Density: 0.3, Toric: true, Generations: 60}
}

func TestSurveyIsOrderedAndDeterministic(t *testing.T) {
	var scenarios []scenario
	for _, rule := range life.Rules() {
		for s := int64(3); s > 0; s-- {
			scenarios = append(scenarios, scenario{rule: rule, seed: s})
		}
	}

	parallel := survey(smallSurvey(), scenarios, 4)
	serial := survey(smallSurvey(), scenarios, 1)
	require.Len(t, parallel, len(scenarios))
	require.Equal(t, serial, parallel)

	for i := 1; i < len(parallel); i++ {
		a, b := parallel[i-1], parallel[i]
		require.True(t, a.rule.Kind() < b.rule.Kind() ||
			(a.rule.Kind() == b.rule.Kind() && a.seed < b.seed))
	}
}

func TestRunScenarioDetectsEmptyBoard(t *testing.T) {
	cfg := smallSurvey()
	cfg.Density = 0
	res := runScenario(cfg, scenario{rule: life.NewRule(life.Classic), seed: 1})
	require.True(t, res.settled())
	require.Equal(t, 1, res.settledAt)
	require.Equal(t, 1, res.cycleLength)
	require.Zero(t, res.final)
}

func TestReport(t *testing.T) {
	results := []scenarioResult{
		{scenario: scenario{rule: life.NewRule(life.Classic), seed: 1}, initial: 1200, final: 40, peak: 1200, settledAt: 312, cycleLength: 2},
		{scenario: scenario{rule: life.NewRule(life.Seeds), seed: 1}, initial: 10, final: 3000, peak: 3100},
	}
	var buf bytes.Buffer
	report(&buf, message.NewPrinter(language.English), results)

	out := buf.String()
	require.Contains(t, out, "Classic Conway (B3/S23)")
	require.Contains(t, out, "alive 1,200 -> 40 (peak 1,200), settled at gen 312, period 2")
	require.Contains(t, out, "Seeds (B2/S)")
	require.Contains(t, out, "still changing")
}

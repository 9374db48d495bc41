package game

import (
	"strconv"

	"life-ca/internal/core"
)

// Parameters describes the controller state for display.
func (c *Controller) Parameters() core.ParameterSnapshot {
	rule := c.grid.Rule()
	size := c.grid.Size()
	status := "running"
	switch {
	case c.stagnant:
		status = c.reason
	case c.Browsing():
		status = "history -" + strconv.Itoa(c.HistoryPosition())
	case c.paused || !c.running:
		status = "paused"
	}

	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(c.generation)},
				{Key: "population", Label: "Alive", Type: core.ParamTypeInt, Value: strconv.Itoa(c.grid.CountLivingCells())},
				{Key: "status", Label: "Status", Type: core.ParamTypeString, Value: status},
				{Key: "cycle", Label: "Cycle", Type: core.ParamTypeInt, Value: strconv.Itoa(c.cycleLength),
					Description: "Detected period, 0 while the pattern keeps changing."},
				{Key: "interval", Label: "Interval", Type: core.ParamTypeString, Value: c.ticker.Interval().String()},
			},
		},
		{
			Name:    "Grid",
			Summary: rule.Notation(),
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: rule.Name(), Description: rule.Description()},
				{Key: "size", Label: "Size", Type: core.ParamTypeString, Value: strconv.Itoa(size.W) + "x" + strconv.Itoa(size.H)},
				{Key: "toric", Label: "Toric", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.grid.Toric())},
				{Key: "parallel", Label: "Parallel", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.grid.Parallel())},
			},
		},
	}}
}

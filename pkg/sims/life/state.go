package life

// State is the tag of a cell: liveness combined with the obstacle flag. The
// numeric values match the extended file encoding.
type State uint8

const (
	Dead State = iota
	Alive
	ObstacleDead
	ObstacleAlive
)

// StateFromBool builds the state carrying the given flags.
func StateFromBool(alive, obstacle bool) State {
	switch {
	case obstacle && alive:
		return ObstacleAlive
	case obstacle:
		return ObstacleDead
	case alive:
		return Alive
	default:
		return Dead
	}
}

// StateFromInt maps 0..3 onto the four states. Any other value is Dead.
func StateFromInt(v int) State {
	if v < 0 || v > int(ObstacleAlive) {
		return Dead
	}
	return State(v)
}

// IsAlive reports the liveness flag.
func (s State) IsAlive() bool { return s == Alive || s == ObstacleAlive }

// IsObstacle reports whether the state is exempt from rule-driven change.
func (s State) IsObstacle() bool { return s == ObstacleDead || s == ObstacleAlive }

// WithAlive returns the state with the liveness flag replaced.
func (s State) WithAlive(alive bool) State { return StateFromBool(alive, s.IsObstacle()) }

// WithObstacle returns the state with the obstacle flag replaced.
func (s State) WithObstacle(obstacle bool) State { return StateFromBool(s.IsAlive(), obstacle) }

// Int returns the extended file encoding of the state.
func (s State) Int() int { return int(s) }

func (s State) String() string {
	switch s {
	case Alive:
		return "Alive"
	case ObstacleDead:
		return "ObstacleDead"
	case ObstacleAlive:
		return "ObstacleAlive"
	default:
		return "Dead"
	}
}

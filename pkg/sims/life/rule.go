package life

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// RuleKind tags the built-in rules. Custom carries its own birth and
// survival sets.
type RuleKind uint8

const (
	Classic RuleKind = iota
	HighLife
	DayAndNight
	Seeds
	Maze
	Custom
)

// neighborSet is a bitmask over living-neighbour counts 0..8.
type neighborSet uint16

func setOf(counts ...int) neighborSet {
	var s neighborSet
	for _, n := range counts {
		s |= 1 << uint(n)
	}
	return s
}

func (s neighborSet) has(n int) bool {
	if n < 0 || n > 8 {
		return false
	}
	return s&(1<<uint(n)) != 0
}

func (s neighborSet) counts() []int {
	var out []int
	for n := 0; n <= 8; n++ {
		if s.has(n) {
			out = append(out, n)
		}
	}
	return out
}

func (s neighborSet) digits() string {
	var b strings.Builder
	for _, n := range s.counts() {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

// sets returns the birth and survival sets of a built-in kind.
func (k RuleKind) sets() (birth, survival neighborSet) {
	switch k {
	case Classic:
		return setOf(3), setOf(2, 3)
	case HighLife:
		return setOf(3, 6), setOf(2, 3)
	case DayAndNight:
		return setOf(3, 6, 7, 8), setOf(3, 4, 6, 7, 8)
	case Seeds:
		return setOf(2), 0
	case Maze:
		return setOf(3), setOf(1, 2, 3, 4, 5)
	default:
		return 0, 0
	}
}

// Rule is a birth/survival transition. It is a plain value: copying it
// clones it, and a Grid holds its own copy.
type Rule struct {
	kind        RuleKind
	birth       neighborSet
	survival    neighborSet
	name        string
	description string
}

// NewRule returns the built-in rule of the given kind. Custom and unknown
// kinds yield Classic.
func NewRule(kind RuleKind) Rule {
	if kind >= Custom {
		kind = Classic
	}
	b, s := kind.sets()
	return Rule{kind: kind, birth: b, survival: s}
}

// NewCustomRule builds a rule from explicit birth and survival counts.
func NewCustomRule(birth, survival []int, name, description string) (Rule, error) {
	for _, n := range slices.Concat(birth, survival) {
		if n < 0 || n > 8 {
			return Rule{}, fmt.Errorf("%w: neighbour count %d outside 0..8", ErrInvalidRule, n)
		}
	}
	r := Rule{
		kind:        Custom,
		birth:       setOf(birth...),
		survival:    setOf(survival...),
		name:        name,
		description: description,
	}
	if r.name == "" {
		r.name = r.Notation()
	}
	return r, nil
}

// Kind reports which variant the rule is.
func (r Rule) Kind() RuleKind { return r.kind }

// NextState evaluates the rule for one cell. Obstacles are returned
// untouched.
func (r Rule) NextState(current State, livingNeighbors int) State {
	if current.IsObstacle() {
		return current
	}
	if current.IsAlive() {
		if r.survival.has(livingNeighbors) {
			return Alive
		}
		return Dead
	}
	if r.birth.has(livingNeighbors) {
		return Alive
	}
	return Dead
}

// Birth lists the neighbour counts that bring a dead cell to life.
func (r Rule) Birth() []int { return r.birth.counts() }

// Survival lists the neighbour counts that keep a living cell alive.
func (r Rule) Survival() []int { return r.survival.counts() }

// Notation renders the rule as B…/S….
func (r Rule) Notation() string {
	return "B" + r.birth.digits() + "/S" + r.survival.digits()
}

// Name returns a human-readable rule name.
func (r Rule) Name() string {
	switch r.kind {
	case Classic:
		return "Classic Conway"
	case HighLife:
		return "HighLife"
	case DayAndNight:
		return "Day & Night"
	case Seeds:
		return "Seeds"
	case Maze:
		return "Maze"
	default:
		return r.name
	}
}

// Description summarises the rule's behaviour.
func (r Rule) Description() string {
	switch r.kind {
	case Classic:
		return "B3/S23 - birth with 3 neighbours, survival with 2 or 3"
	case HighLife:
		return "B36/S23 - birth with 3 or 6 neighbours, survival with 2 or 3"
	case DayAndNight:
		return "B3678/S34678 - symmetric rule with invertible patterns"
	case Seeds:
		return "B2/S - birth with 2 neighbours, every living cell dies"
	case Maze:
		return "B3/S12345 - grows maze-like corridors"
	default:
		if r.description != "" {
			return r.description
		}
		return r.Notation() + " - custom rule"
	}
}

func (r Rule) String() string { return r.Name() + " (" + r.Notation() + ")" }

// Rules returns every built-in rule in catalogue order.
func Rules() []Rule {
	return []Rule{
		NewRule(Classic),
		NewRule(HighLife),
		NewRule(DayAndNight),
		NewRule(Seeds),
		NewRule(Maze),
	}
}

// RuleByName resolves a built-in rule by one of its names, ignoring case.
func RuleByName(name string) (Rule, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "classic", "conway", "life":
		return NewRule(Classic), true
	case "highlife":
		return NewRule(HighLife), true
	case "daynight", "dayandnight", "day_and_night", "day&night":
		return NewRule(DayAndNight), true
	case "seeds":
		return NewRule(Seeds), true
	case "maze":
		return NewRule(Maze), true
	}
	return Rule{}, false
}

// ParseRule accepts a built-in name or B/S notation such as "B36/S23" (the
// two halves may come in either order).
func ParseRule(text string) (Rule, error) {
	if r, ok := RuleByName(text); ok {
		return r, nil
	}
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("%w: %q is neither a rule name nor B/S notation", ErrInvalidRule, text)
	}
	var birth, survival []int
	var seenB, seenS bool
	for _, part := range parts {
		if part == "" {
			return Rule{}, fmt.Errorf("%w: empty half in %q", ErrInvalidRule, text)
		}
		counts, err := parseCounts(part[1:])
		if err != nil {
			return Rule{}, fmt.Errorf("%w: %q: %v", ErrInvalidRule, text, err)
		}
		switch part[0] {
		case 'B', 'b':
			if seenB {
				return Rule{}, fmt.Errorf("%w: duplicate birth set in %q", ErrInvalidRule, text)
			}
			seenB, birth = true, counts
		case 'S', 's':
			if seenS {
				return Rule{}, fmt.Errorf("%w: duplicate survival set in %q", ErrInvalidRule, text)
			}
			seenS, survival = true, counts
		default:
			return Rule{}, fmt.Errorf("%w: %q must start with B or S", ErrInvalidRule, part)
		}
	}
	r, err := NewCustomRule(birth, survival, "", "")
	if err != nil {
		return Rule{}, err
	}
	return r, nil
}

func parseCounts(digits string) ([]int, error) {
	counts := make([]int, 0, len(digits))
	for _, ch := range digits {
		n, err := strconv.Atoi(string(ch))
		if err != nil || n > 8 {
			return nil, fmt.Errorf("bad neighbour count %q", ch)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

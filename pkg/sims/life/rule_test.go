package life

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinRuleTable(t *testing.T) {
	cases := []struct {
		kind     RuleKind
		notation string
		birth    []int
		survival []int
	}{
		{Classic, "B3/S23", []int{3}, []int{2, 3}},
		{HighLife, "B36/S23", []int{3, 6}, []int{2, 3}},
		{DayAndNight, "B3678/S34678", []int{3, 6, 7, 8}, []int{3, 4, 6, 7, 8}},
		{Seeds, "B2/S", []int{2}, nil},
		{Maze, "B3/S12345", []int{3}, []int{1, 2, 3, 4, 5}},
	}
	for _, tc := range cases {
		r := NewRule(tc.kind)
		require.Equal(t, tc.notation, r.Notation())
		require.Equal(t, tc.birth, r.Birth())
		require.Equal(t, tc.survival, r.Survival())
		require.NotEmpty(t, r.Name())
		require.NotEmpty(t, r.Description())

		for n := 0; n <= 8; n++ {
			wantBirth := slices.Contains(tc.birth, n)
			wantSurvive := slices.Contains(tc.survival, n)
			require.Equal(t, wantBirth, r.NextState(Dead, n).IsAlive(), "%s birth n=%d", r.Name(), n)
			require.Equal(t, wantSurvive, r.NextState(Alive, n).IsAlive(), "%s survival n=%d", r.Name(), n)
			require.Equal(t, ObstacleDead, r.NextState(ObstacleDead, n))
			require.Equal(t, ObstacleAlive, r.NextState(ObstacleAlive, n))
		}
	}
}

func TestCustomRuleMatchesBuiltin(t *testing.T) {
	custom, err := NewCustomRule([]int{3, 6}, []int{2, 3}, "Mine", "")
	require.NoError(t, err)
	require.Equal(t, Custom, custom.Kind())
	require.Equal(t, "Mine", custom.Name())
	require.Contains(t, custom.Description(), "B36/S23")

	builtin := NewRule(HighLife)
	for n := 0; n <= 8; n++ {
		for _, s := range []State{Dead, Alive} {
			require.Equal(t, builtin.NextState(s, n), custom.NextState(s, n))
		}
	}

	_, err = NewCustomRule([]int{9}, nil, "", "")
	require.ErrorIs(t, err, ErrInvalidRule)
}

func TestRuleIsValueCopy(t *testing.T) {
	a := New(3, 3)
	r := NewRule(Maze)
	a.SetRule(r)
	b := a.Clone()
	b.SetRule(NewRule(Seeds))
	require.Equal(t, Maze, a.Rule().Kind())
	require.Equal(t, r, a.Rule())
}

func TestParseRule(t *testing.T) {
	r, err := ParseRule("HighLife")
	require.NoError(t, err)
	require.Equal(t, HighLife, r.Kind())

	r, err = ParseRule("day_and_night")
	require.NoError(t, err)
	require.Equal(t, DayAndNight, r.Kind())

	r, err = ParseRule("B36/S23")
	require.NoError(t, err)
	require.Equal(t, Custom, r.Kind())
	require.Equal(t, "B36/S23", r.Name())

	r, err = ParseRule("s23/b3")
	require.NoError(t, err)
	require.Equal(t, "B3/S23", r.Notation())

	r, err = ParseRule("B2/S")
	require.NoError(t, err)
	require.Empty(t, r.Survival())

	for _, bad := range []string{"nonsense", "B9/S23", "B3/B4", "X3/S2", "/S23", "B3/S2/S3"} {
		_, err := ParseRule(bad)
		require.ErrorIs(t, err, ErrInvalidRule, bad)
	}
}

func TestRulesCatalogue(t *testing.T) {
	rules := Rules()
	require.Len(t, rules, 5)

	aliases := map[RuleKind][]string{
		Classic:     {"classic", "Conway", "LIFE"},
		HighLife:    {"highlife", "HighLife"},
		DayAndNight: {"daynight", "DayAndNight", "day_and_night", "Day&Night"},
		Seeds:       {"seeds"},
		Maze:        {" maze "},
	}
	for _, r := range rules {
		for _, name := range aliases[r.Kind()] {
			byName, ok := RuleByName(name)
			require.True(t, ok, name)
			require.Equal(t, r, byName, name)
		}
	}
	_, ok := RuleByName("unknown")
	require.False(t, ok)
}

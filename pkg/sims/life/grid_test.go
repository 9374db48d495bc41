package life

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"life-ca/internal/core"
)

func TestCountLivingNeighborsBounded(t *testing.T) {
	g := New(5, 5)
	require.NoError(t, g.SetAlive(2, 2, true))

	require.Equal(t, 0, g.CountLivingNeighbors(2, 2))
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			require.Equal(t, 1, g.CountLivingNeighbors(2+dx, 2+dy), "neighbour (%d,%d)", 2+dx, 2+dy)
		}
	}
	require.Equal(t, 0, g.CountLivingNeighbors(0, 0))
	require.Equal(t, 0, g.CountLivingNeighbors(4, 4))
}

func TestCountLivingNeighborsToricCorners(t *testing.T) {
	g := New(5, 5)
	require.NoError(t, g.SetAlive(0, 0, true))

	require.Equal(t, 0, g.CountLivingNeighbors(4, 4), "bounded grid must not wrap")

	g.SetToric(true)
	for _, xy := range [][2]int{{4, 4}, {4, 0}, {0, 4}, {1, 4}, {4, 1}, {1, 1}} {
		require.Equal(t, 1, g.CountLivingNeighbors(xy[0], xy[1]), "neighbour (%d,%d)", xy[0], xy[1])
	}
	require.Equal(t, 0, g.CountLivingNeighbors(2, 2))
}

func TestToricGliderCrossesEdge(t *testing.T) {
	g := New(8, 8)
	g.SetToric(true)
	g.PlacePattern("glider", 6, 6)
	require.Equal(t, 5, g.CountLivingCells())

	// a glider returns to its shape shifted by (1,1) every four generations
	for i := 0; i < 32; i++ {
		g.Step()
	}
	want := New(8, 8)
	want.SetToric(true)
	want.PlacePattern("glider", 6+8, 6+8)
	require.True(t, g.Equal(want))
}

func TestObstaclesIgnoreRule(t *testing.T) {
	g := New(5, 5)
	// a dead obstacle with exactly three living neighbours
	require.NoError(t, g.SetState(2, 2, ObstacleDead))
	require.NoError(t, g.SetAlive(1, 1, true))
	require.NoError(t, g.SetAlive(2, 1, true))
	require.NoError(t, g.SetAlive(3, 1, true))
	// a living obstacle without neighbours
	require.NoError(t, g.SetState(0, 4, ObstacleAlive))

	for i := 0; i < 3; i++ {
		g.ComputeNextGeneration()
		g.ApplyNextGeneration()

		s, err := g.State(2, 2)
		require.NoError(t, err)
		require.Equal(t, ObstacleDead, s)

		s, err = g.State(0, 4)
		require.NoError(t, err)
		require.Equal(t, ObstacleAlive, s)
	}
}

func TestComputeDoesNotTouchCommittedState(t *testing.T) {
	g := New(5, 5)
	g.PlacePattern("blinker", 1, 1)
	before := g.Clone()

	g.ComputeNextGeneration()
	require.True(t, g.Equal(before), "compute must only fill pending slots")

	g.ApplyNextGeneration()
	require.False(t, g.Equal(before))
}

func TestParallelMatchesSequential(t *testing.T) {
	for _, rule := range Rules() {
		for _, toric := range []bool{false, true} {
			for _, workers := range []int{0, 3, 7, 100} {
				seq := New(64, 53)
				seq.SetRule(rule)
				seq.SetToric(toric)
				seq.Randomize(core.NewRNG(11), 0.4)
				require.NoError(t, seq.SetState(10, 10, ObstacleDead))
				require.NoError(t, seq.SetState(40, 30, ObstacleAlive))

				par := seq.Clone()
				par.SetParallel(true)
				par.SetWorkers(workers)

				for i := 0; i < 3; i++ {
					seq.Step()
					par.Step()
				}
				require.True(t, seq.Equal(par), "%s toric=%v workers=%d", rule.Name(), toric, workers)
				require.Equal(t, seq.Cells(), par.Cells(), "%s toric=%v workers=%d", rule.Name(), toric, workers)
			}
		}
	}
}

func TestPlacePatternBoundedDropsOutside(t *testing.T) {
	g := New(4, 4)
	require.True(t, g.PlacePattern("glider", 2, 2))
	require.Equal(t, 1, g.CountLivingCells())
	s, _ := g.State(3, 2)
	require.True(t, s.IsAlive())
	require.Equal(t, core.Size{W: 4, H: 4}, g.Size())
}

func TestPlacePatternToricWraps(t *testing.T) {
	g := New(5, 5)
	g.SetToric(true)
	require.True(t, g.PlacePattern("glider", 3, 3))
	require.Equal(t, 5, g.CountLivingCells())
	for _, xy := range [][2]int{{4, 3}, {0, 4}, {3, 0}, {4, 0}, {0, 0}} {
		s, err := g.State(xy[0], xy[1])
		require.NoError(t, err)
		require.True(t, s.IsAlive(), "cell (%d,%d)", xy[0], xy[1])
	}
}

func TestPlacePatternUnknownName(t *testing.T) {
	g := New(10, 10)
	require.False(t, g.PlacePattern("spaceship-9000", 1, 1))
	require.Zero(t, g.CountLivingCells())
}

func TestEveryPatternPlaces(t *testing.T) {
	names := Patterns()
	require.Len(t, names, 15)
	require.Equal(t, "glider", names[0])
	for _, name := range names {
		g := New(40, 40)
		require.True(t, g.PlacePattern(name, 1, 1), name)
		require.Positive(t, g.CountLivingCells(), name)
	}
}

func TestCellAccessOutOfRange(t *testing.T) {
	g := New(5, 4)
	for _, xy := range [][2]int{{-1, 0}, {5, 0}, {0, 4}, {0, -1}} {
		_, err := g.Cell(xy[0], xy[1])
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrIndexOutOfRange))

		var ie *IndexError
		require.ErrorAs(t, err, &ie)
		require.Equal(t, xy[0], ie.X)
		require.Equal(t, 5, ie.Width)
	}
	require.ErrorIs(t, g.SetAlive(9, 9, true), ErrIndexOutOfRange)
	require.ErrorIs(t, g.ToggleObstacle(9, 9), ErrIndexOutOfRange)
}

func TestEqualIgnoresObstacles(t *testing.T) {
	a := New(3, 3)
	b := New(3, 3)
	require.NoError(t, a.SetState(1, 1, ObstacleAlive))
	require.NoError(t, b.SetState(1, 1, Alive))
	require.True(t, a.Equal(b))

	require.NoError(t, b.SetState(1, 1, ObstacleDead))
	require.False(t, a.Equal(b))

	require.False(t, a.Equal(New(3, 4)))
	require.False(t, a.Equal(nil))
}

func TestResizeResetsToDead(t *testing.T) {
	g := New(3, 3)
	g.SetToric(true)
	g.SetRule(NewRule(Maze))
	require.NoError(t, g.SetState(0, 0, ObstacleAlive))

	g.Resize(6, 2)
	require.Equal(t, 6, g.Width())
	require.Equal(t, 2, g.Height())
	require.Zero(t, g.CountLivingCells())
	require.Len(t, g.Cells(), 12)
	require.True(t, g.Toric())
	require.Equal(t, Maze, g.Rule().Kind())

	g.Resize(0, 0)
	require.Equal(t, core.Size{W: 1, H: 1}, g.Size())
}

func TestRandomizeAndClearSkipObstacles(t *testing.T) {
	g := New(6, 6)
	require.NoError(t, g.SetState(0, 0, ObstacleDead))
	require.NoError(t, g.SetState(5, 5, ObstacleAlive))

	g.Randomize(core.NewRNG(3), 1)
	require.Equal(t, 35, g.CountLivingCells())
	s, _ := g.State(0, 0)
	require.Equal(t, ObstacleDead, s)

	g.Clear()
	require.Equal(t, 1, g.CountLivingCells())
	s, _ = g.State(5, 5)
	require.Equal(t, ObstacleAlive, s)

	g.ClearObstacles()
	s, _ = g.State(5, 5)
	require.Equal(t, Alive, s)
}

func TestCopyFromKeepsSettings(t *testing.T) {
	src := New(4, 2)
	src.PlacePattern("block", 0, 0)

	dst := New(9, 9)
	dst.SetToric(true)
	dst.SetRule(NewRule(Seeds))
	dst.CopyFrom(src)

	require.True(t, dst.Equal(src))
	require.True(t, dst.Toric())
	require.Equal(t, Seeds, dst.Rule().Kind())

	// copies are independent
	require.NoError(t, src.SetAlive(3, 1, true))
	require.False(t, dst.Equal(src))
}

func TestCellsDisplayCodes(t *testing.T) {
	g := New(4, 1)
	require.NoError(t, g.SetState(1, 0, Alive))
	require.NoError(t, g.SetState(2, 0, ObstacleDead))
	require.NoError(t, g.SetState(3, 0, ObstacleAlive))
	require.Equal(t, []uint8{0, 1, 2, 3}, g.Cells())
}

package game

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"life-ca/pkg/codec"
	"life-ca/pkg/sims/life"
)

func blinkerFile(t *testing.T, dir, name string, generations int) string {
	t.Helper()
	g := life.New(5, 5)
	require.True(t, g.PlacePattern("blinker", 1, 1))
	for i := 0; i < generations; i++ {
		g.Step()
	}
	path := filepath.Join(dir, name)
	require.NoError(t, codec.Save(path, g))
	return path
}

func TestOutputDir(t *testing.T) {
	require.Equal(t, filepath.Join("runs", "glider_out"), OutputDir(filepath.Join("runs", "glider.txt")))
	require.Equal(t, "plain_out", OutputDir("plain"))
	require.Equal(t, "generation_000042.ext", SnapshotName(42))
}

func TestRunConsoleMode(t *testing.T) {
	dir := t.TempDir()
	path := blinkerFile(t, dir, "blinker.txt", 0)
	c := newController(t, 3, 3)

	out, err := c.RunConsoleMode(context.Background(), path, 3)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "blinker_out"), out)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.Equal(t, []string{
		"generation_000000.ext",
		"generation_000001.ext",
		"generation_000002.ext",
		"generation_000003.ext",
	}, names)

	first := life.New(1, 1)
	require.NoError(t, codec.Load(filepath.Join(out, "generation_000001.ext"), first))
	for y := 1; y <= 3; y++ {
		s, err := first.State(2, y)
		require.NoError(t, err)
		require.True(t, s.IsAlive(), "vertical blinker at (2,%d)", y)
	}
	require.Equal(t, 3, first.CountLivingCells())
	require.Equal(t, 3, c.Generation())
}

func TestRunConsoleModeZeroGenerations(t *testing.T) {
	path := blinkerFile(t, t.TempDir(), "still.txt", 0)
	c := newController(t, 3, 3)
	out, err := c.RunConsoleMode(context.Background(), path, 0)
	require.NoError(t, err)
	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestRunConsoleModeFailures(t *testing.T) {
	c := newController(t, 3, 3)
	_, err := c.RunConsoleMode(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), 2)
	require.ErrorIs(t, err, codec.ErrIO)

	path := blinkerFile(t, t.TempDir(), "blinker.txt", 0)
	_, err = c.RunConsoleMode(context.Background(), path, -1)
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.RunConsoleMode(ctx, path, 5)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunComparisonTest(t *testing.T) {
	dir := t.TempDir()
	initPath := blinkerFile(t, dir, "init.txt", 0)
	expected := blinkerFile(t, dir, "expected.gol", 1)

	c := newController(t, 3, 3)
	match, err := c.RunComparisonTest(context.Background(), initPath, expected, 1)
	require.NoError(t, err)
	require.True(t, match)

	match, err = c.RunComparisonTest(context.Background(), initPath, expected, 3)
	require.NoError(t, err)
	require.True(t, match, "period two")

	match, err = c.RunComparisonTest(context.Background(), initPath, expected, 2)
	require.NoError(t, err)
	require.False(t, match)
}

func TestRunComparisonTestFailures(t *testing.T) {
	dir := t.TempDir()
	initPath := blinkerFile(t, dir, "init.txt", 0)
	c := newController(t, 3, 3)

	_, err := c.RunComparisonTest(context.Background(), initPath, filepath.Join(dir, "nope.txt"), 1)
	require.ErrorIs(t, err, codec.ErrIO)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("2 2\n1 x\n"), 0o644))
	_, err = c.RunComparisonTest(context.Background(), bad, initPath, 1)
	require.ErrorIs(t, err, codec.ErrData)
}

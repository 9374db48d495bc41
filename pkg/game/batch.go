package game

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"life-ca/pkg/codec"
	"life-ca/pkg/sims/life"
)

const (
	logEvery = 10
	// snapshotExt selects the obstacle-preserving matrix codec.
	snapshotExt = ".ext"
)

// OutputDir returns the directory console runs write snapshots of path to:
// a sibling directory named after the input with an "_out" suffix.
func OutputDir(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(path), base+"_out")
}

// SnapshotName returns the file name used for generation n.
func SnapshotName(n int) string {
	return fmt.Sprintf("generation_%06d%s", n, snapshotExt)
}

// RunConsoleMode loads path and steps it n generations, saving every
// generation including the initial one in the extended format. It returns
// the directory holding the snapshots.
func (c *Controller) RunConsoleMode(ctx context.Context, path string, n int) (dir string, err error) {
	ctx, span := c.tracer.Start(ctx, "game.RunConsoleMode", trace.WithAttributes(
		attribute.String("path", path),
		attribute.Int("generations", n),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if n < 0 {
		return "", fmt.Errorf("console run: negative generation count %d", n)
	}
	if err := c.Load(path); err != nil {
		return "", err
	}
	dir = OutputDir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("console run: %w", err)
	}
	c.logger.Printf("console run: %d generations of %s into %s", n, path, dir)

	if err := c.saveSnapshot(dir, 0); err != nil {
		return "", err
	}
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		c.advance()
		if err := c.saveSnapshot(dir, i); err != nil {
			return "", err
		}
		if i%logEvery == 0 || i == n {
			c.logger.Printf("console run: generation %d/%d, %d alive", i, n, c.grid.CountLivingCells())
		}
	}
	return dir, nil
}

func (c *Controller) saveSnapshot(dir string, n int) error {
	p := filepath.Join(dir, SnapshotName(n))
	if err := codec.Save(p, c.grid); err != nil {
		c.logger.Printf("save %s: %v", p, err)
		return err
	}
	return nil
}

// RunComparisonTest loads initPath, steps it n generations and reports whether
// the result matches the grid stored in expected. Liveness alone is compared.
// The error is non-nil only when a file cannot be read.
func (c *Controller) RunComparisonTest(ctx context.Context, initPath, expected string, n int) (match bool, err error) {
	ctx, span := c.tracer.Start(ctx, "game.RunComparisonTest", trace.WithAttributes(
		attribute.String("init", initPath),
		attribute.String("expected", expected),
		attribute.Int("generations", n),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(attribute.Bool("match", match))
		span.End()
	}()

	if n < 0 {
		return false, fmt.Errorf("comparison test: negative generation count %d", n)
	}
	if err := c.Load(initPath); err != nil {
		return false, err
	}
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		c.advance()
	}

	want := life.New(1, 1)
	if err := codec.Load(expected, want); err != nil {
		c.logger.Printf("load %s: %v", expected, err)
		return false, err
	}
	match = c.grid.Equal(want)
	c.logger.Printf("comparison test: %s after %d generations vs %s: match=%t", initPath, n, expected, match)
	return match, nil
}

// advance steps the live grid without touching history or cycle state.
func (c *Controller) advance() {
	c.grid.ComputeNextGeneration()
	c.grid.ApplyNextGeneration()
	c.generation++
}

//go:build !ebiten

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInteractiveNeedsEbitenTag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 1, run([]string{"--width", "10", "--height", "10"}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "ebiten")
}

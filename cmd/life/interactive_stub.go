//go:build !ebiten

package main

import (
	"errors"

	"life-ca/internal/app"
	"life-ca/pkg/game"
)

var errNoGUI = errors.New("the interactive mode requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/life`")

func runInteractive(*game.Controller, app.Options) error { return errNoGUI }

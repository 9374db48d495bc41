//go:build ebiten

package main

import (
	"errors"

	"life-ca/internal/app"
	"life-ca/pkg/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func runInteractive(ctrl *game.Controller, opts app.Options) error {
	opts = opts.Normalized()
	g := app.New(ctrl, opts)
	size := ctrl.Size()

	ebiten.SetWindowTitle("life-ca: " + ctrl.Name())
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(opts.WindowSize(size.W, size.H))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

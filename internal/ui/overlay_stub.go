//go:build !ebiten

package ui

import "life-ca/internal/core"

// StatusSource exposes the controller state shown in the banner.
type StatusSource interface {
	Size() core.Size
	Paused() bool
	Stagnant() bool
	StopReason() string
	HistoryPosition() int
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(StatusSource, int) *Overlay { return &Overlay{} }

// Flash is a no-op in headless builds.
func (o *Overlay) Flash(string, int) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}

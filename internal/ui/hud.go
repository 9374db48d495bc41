//go:build ebiten

package ui

import (
	"image/color"

	"life-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
	groupGap     = 8
)

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor = color.RGBA{R: 235, G: 235, B: 240, A: 255}
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
)

// ParameterSource is what the HUD reads every frame.
type ParameterSource interface {
	Parameters() core.ParameterSnapshot
	Size() core.Size
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	src        ParameterSource
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
}

// NewHUD constructs a HUD for src with the given panel width.
func NewHUD(src ParameterSource, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{src: src, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot.
func (h *HUD) Update() {
	if h == nil || h.src == nil {
		return
	}
	h.snapshot = h.src.Parameters()
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.src.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawGroups()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawGroups() {
	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	valueX := h.width / 2
	for _, group := range h.snapshot.Groups {
		title := group.Name
		if group.Summary != "" {
			title += "  " + group.Summary
		}
		text.Draw(h.panel, title, face, panelPadding, y, titleColor)
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, labelColor)
			text.Draw(h.panel, p.Value, face, valueX, y, valueColor)
			y += lineHeight
		}
		y += groupGap
	}
}

//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"life-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// StatusSource exposes the controller state shown in the banner.
type StatusSource interface {
	Size() core.Size
	Paused() bool
	Stagnant() bool
	StopReason() string
	HistoryPosition() int
}

var (
	bannerColor   = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	stagnantColor = color.RGBA{R: 250, G: 190, B: 80, A: 255}
	historyColor  = color.RGBA{R: 120, G: 180, B: 250, A: 255}
	pausedColor   = color.RGBA{R: 210, G: 210, B: 210, A: 255}
	gridLineColor = color.RGBA{R: 60, G: 60, B: 70, A: 255}
)

// Overlay draws the status banner and optional grid lines on top of the
// simulation view. G toggles the lines.
type Overlay struct {
	src       StatusSource
	scale     int
	showLines bool
	message   string
	ttl       int
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src StatusSource, scale int) *Overlay {
	o := &Overlay{src: src, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Flash shows msg for the given number of frames.
func (o *Overlay) Flash(msg string, frames int) {
	o.message = msg
	o.ttl = frames
}

// Update handles overlay toggles and message expiry.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showLines = !o.showLines
	}
	if o.ttl > 0 {
		o.ttl--
		if o.ttl == 0 {
			o.message = ""
		}
	}
}

// Draw renders the overlay onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || o.src == nil {
		return
	}
	size := o.src.Size()
	if o.showLines && o.scale >= 4 {
		o.drawGridLines(screen, size)
	}

	line, col := o.status()
	if o.message != "" {
		line, col = o.message, pausedColor
	}
	if line == "" {
		return
	}
	width := float64(size.W * o.scale)
	o.drawRect(screen, 0, 0, width, 20, bannerColor)
	text.Draw(screen, line, basicfont.Face7x13, 6, 14, col)
}

func (o *Overlay) status() (string, color.Color) {
	switch {
	case o.src.Stagnant():
		return "stopped: " + o.src.StopReason() + " (R randomize, C clear)", stagnantColor
	case o.src.HistoryPosition() > 0:
		return "history -" + strconv.Itoa(o.src.HistoryPosition()) + " (Right to return)", historyColor
	case o.src.Paused():
		return "paused", pausedColor
	}
	return "", nil
}

func (o *Overlay) drawGridLines(screen *ebiten.Image, size core.Size) {
	w := float64(size.W * o.scale)
	h := float64(size.H * o.scale)
	for x := 0; x <= size.W; x++ {
		o.drawRect(screen, float64(x*o.scale), 0, 1, h, gridLineColor)
	}
	for y := 0; y <= size.H; y++ {
		o.drawRect(screen, 0, float64(y*o.scale), w, 1, gridLineColor)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

//go:build ebiten

package app

import (
	"fmt"
	"time"

	"life-ca/internal/render"
	"life-ca/internal/ui"
	"life-ca/pkg/game"
	"life-ca/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	flashFrames = 90

	minInterval = 20 * time.Millisecond
	maxInterval = 2 * time.Second
)

var patternKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a game.Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *game.Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	opts    Options
	frame   time.Duration
	pattern string
	rules   []life.Rule
}

// New constructs a Game driving ctrl.
func New(ctrl *game.Controller, opts Options) *Game {
	opts = opts.Normalized()
	size := ctrl.Size()
	return &Game{
		ctrl:    ctrl,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(ctrl, sidePanelWidth),
		overlay: ui.NewOverlay(ctrl, opts.Scale),
		opts:    opts,
		frame:   time.Second / time.Duration(opts.TPS),
		rules:   life.Rules(),
	}
}

// Reset reseeds and randomizes the board.
func (g *Game) Reset(seed int64) {
	g.opts.Seed = seed
	g.ctrl.Reset(seed)
}

// Update handles per-frame input and advances the controller.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handleMouse()

	g.overlay.Update()
	g.ctrl.Update(g.frame)
	g.hud.Update()
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.ctrl.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.ctrl.Step()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.ctrl.Randomize(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.Reset(time.Now().UnixNano())
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.ctrl.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.ctrl.Grid().ClearObstacles()
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		if g.ctrl.GoBackward() {
			g.overlay.Flash(fmt.Sprintf("generation -%d", g.ctrl.HistoryPosition()), flashFrames)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.ctrl.GoForward()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.setInterval(g.ctrl.UpdateInterval() * 4 / 5)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.setInterval(g.ctrl.UpdateInterval() * 5 / 4)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		grid := g.ctrl.Grid()
		grid.SetToric(!grid.Toric())
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		grid := g.ctrl.Grid()
		grid.SetParallel(!grid.Parallel())
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.cycleRule()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.load()
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit0):
		g.pattern = ""
	}

	names := life.Patterns()
	for i, key := range patternKeys {
		if i < len(names) && inpututil.IsKeyJustPressed(key) {
			g.pattern = names[i]
			g.overlay.Flash("pattern: "+g.pattern, flashFrames)
		}
	}
}

func (g *Game) setInterval(d time.Duration) {
	d = min(max(d, minInterval), maxInterval)
	g.ctrl.SetUpdateInterval(d)
	g.overlay.Flash("interval "+d.String(), flashFrames)
}

func (g *Game) cycleRule() {
	current := g.ctrl.Rule().Kind()
	next := g.rules[0]
	for i, r := range g.rules {
		if r.Kind() == current {
			next = g.rules[(i+1)%len(g.rules)]
			break
		}
	}
	g.ctrl.SetRule(next)
	g.ctrl.ResetStagnationTimer()
	g.overlay.Flash("rule: "+next.Name()+" "+next.Notation(), flashFrames)
}

func (g *Game) save() {
	if err := g.ctrl.Save(g.opts.SavePath); err != nil {
		g.overlay.Flash("save failed: "+err.Error(), flashFrames)
		return
	}
	g.overlay.Flash("saved "+g.opts.SavePath, flashFrames)
}

func (g *Game) load() {
	if err := g.ctrl.Load(g.opts.SavePath); err != nil {
		g.overlay.Flash("load failed: "+err.Error(), flashFrames)
		return
	}
	size := g.ctrl.Size()
	g.painter.Resize(size.W, size.H)
	g.overlay.Flash("loaded "+g.opts.SavePath, flashFrames)
}

func (g *Game) handleMouse() {
	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := mx/g.opts.Scale, my/g.opts.Scale
	grid := g.ctrl.Grid()
	if !grid.Size().Contains(x, y) {
		return
	}

	switch {
	case right:
		_ = grid.ToggleObstacle(x, y)
	case g.pattern != "":
		grid.PlacePattern(g.pattern, x, y)
	default:
		_ = grid.ToggleAlive(x, y)
	}
	g.ctrl.ResetStagnationTimer()
}

// Draw renders the grid, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctrl.Cells(), g.opts.Scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.ctrl.Size().W*g.opts.Scale, g.opts.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctrl.Size()
	return s.W*g.opts.Scale + g.hud.Width(), s.H * g.opts.Scale
}

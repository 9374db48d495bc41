package app

// sidePanelWidth is the HUD width in pixels.
const sidePanelWidth = 220

// Options configures the interactive front end.
type Options struct {
	Scale    int
	TPS      int
	Seed     int64
	SavePath string
}

// DefaultOptions returns the standard window settings.
func DefaultOptions() Options {
	return Options{Scale: 8, TPS: 60, Seed: 42, SavePath: "life_save.gol"}
}

// Normalized replaces unset fields with their defaults.
func (o Options) Normalized() Options {
	d := DefaultOptions()
	if o.Scale <= 0 {
		o.Scale = d.Scale
	}
	if o.TPS <= 0 {
		o.TPS = d.TPS
	}
	if o.SavePath == "" {
		o.SavePath = d.SavePath
	}
	return o
}

// WindowSize returns the window dimensions for a grid of w by h cells.
func (o Options) WindowSize(w, h int) (int, int) {
	o = o.Normalized()
	return w*o.Scale + sidePanelWidth, h * o.Scale
}

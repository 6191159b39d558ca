package render

import "github.com/lixenwraith/regroup/control"

// Region is a clickable screen rectangle
type Region struct {
	X, Y, W, H int
	Command    control.Command
}

func (r Region) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout collects the clickable regions of the last rendered frame
type Layout struct {
	regions []Region
}

// NewLayout creates an empty layout
func NewLayout() *Layout {
	return &Layout{regions: make([]Region, 0, 32)}
}

// Reset drops all regions; called at frame start
func (l *Layout) Reset() { l.regions = l.regions[:0] }

// Add registers a region; later regions take precedence on overlap
func (l *Layout) Add(x, y, w, h int, cmd control.Command) {
	if w <= 0 || h <= 0 {
		return
	}
	l.regions = append(l.regions, Region{X: x, Y: y, W: w, H: h, Command: cmd})
}

// HitTest returns the command under x, y
func (l *Layout) HitTest(x, y int) (control.Command, bool) {
	for i := len(l.regions) - 1; i >= 0; i-- {
		if l.regions[i].contains(x, y) {
			return l.regions[i].Command, true
		}
	}
	return control.Command{}, false
}

// Regions returns a copy of the registered regions
func (l *Layout) Regions() []Region {
	out := make([]Region, len(l.regions))
	copy(out, l.regions)
	return out
}

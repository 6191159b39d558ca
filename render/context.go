package render

import (
	"time"

	"github.com/lixenwraith/regroup/app"
	"github.com/lixenwraith/regroup/constant"
	"github.com/lixenwraith/regroup/status"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	Now   time.Time
	Frame int64

	App    *app.App
	Status *status.Registry

	// Cursor is the selected cookie index on the counting level, -1 for none
	Cursor int
	Muted  bool

	// Filled by the orchestrator
	Width  int
	Height int
	Theme  *Theme
	Layout *Layout
}

// BodyTop is the first row below the header
func (c Context) BodyTop() int { return constant.HeaderHeight }

// ContentTop is the first row of the level's manipulable area, below the help text
func (c Context) ContentTop() int { return constant.HeaderHeight + 3 }

// FooterTop is the first footer row
func (c Context) FooterTop() int { return c.Height - constant.FooterHeight }

// ButtonRow is the first row of the level's button bar
func (c Context) ButtonRow() int { return c.FooterTop() - 5 }

// TotalRow is the row of the composite value
func (c Context) TotalRow() int { return c.FooterTop() - 2 }

// Pulse reports the on phase of the break pulse animation
func (c Context) Pulse() bool {
	return (c.Frame/(constant.PulsePeriodFrames/2))%2 == 0
}

package renderers

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/regroup/constant"
	"github.com/lixenwraith/regroup/level"
	"github.com/lixenwraith/regroup/render"
)

// NumberLineRenderer draws ticks 0..20 and the frog at the current position
type NumberLineRenderer struct{}

func NewNumberLineRenderer() *NumberLineRenderer { return &NumberLineRenderer{} }

func (n *NumberLineRenderer) IsVisible(ctx render.Context) bool {
	return ctx.App.LevelID() == level.NumberLine
}

// Render implements render.Renderer
func (n *NumberLineRenderer) Render(ctx render.Context, buf *render.Buffer) {
	p, ok := ctx.App.Level().(level.Positioner)
	if !ok {
		return
	}
	th := ctx.Theme
	top := ctx.ContentTop()

	span := constant.NumberLineMax - constant.NumberLineMin
	pitch := (ctx.Width - 8) / span
	if pitch > 3 {
		pitch = 3
	}
	if pitch < 1 {
		pitch = 1
	}
	x0 := (ctx.Width - span*pitch) / 2

	pos := p.Position()
	frogX := x0 + (pos-constant.NumberLineMin)*pitch
	buf.Set(frogX, top+1, constant.FrogGlyph, th.Frog)

	lineY := top + 2
	buf.HLine(x0, lineY, span*pitch+1, constant.LineGlyph, th.Tick)
	for v := constant.NumberLineMin; v <= constant.NumberLineMax; v++ {
		x := x0 + (v-constant.NumberLineMin)*pitch
		style := th.Tick
		if v == pos {
			style = th.Frog
		}
		buf.Set(x, lineY, constant.TickGlyph, style)

		if v%constant.NumberLineJump == 0 || v == pos {
			label := strconv.Itoa(v)
			buf.SetString(x-(len(label)-1)/2, lineY+1, label, style)
		}
	}

	buf.SetCentered(0, ctx.Width, top+5, fmt.Sprintf("Position: %d", pos), th.Caption)
}

package renderers

import (
	"github.com/lixenwraith/regroup/level"
	"github.com/lixenwraith/regroup/render"
)

// TotalsRenderer draws the composite value and, when show-work is on, the
// decomposition expression
type TotalsRenderer struct{}

func NewTotalsRenderer() *TotalsRenderer { return &TotalsRenderer{} }

// Render implements render.Renderer
func (t *TotalsRenderer) Render(ctx render.Context, buf *render.Buffer) {
	th := ctx.Theme
	f := ctx.App.Formatter()
	lv := ctx.App.Level()

	var label string
	switch lv.Info().ID {
	case level.Counting:
		label = "Cookies: "
	case level.NumberLine:
		label = "Frog is at: "
	default:
		label = "Total: "
	}
	buf.SetCentered(0, ctx.Width, ctx.TotalRow(), label+f.Number(lv.Total()), th.Total)

	if work, ok := ctx.App.Work(); ok {
		buf.SetCentered(0, ctx.Width, ctx.TotalRow()+1, work, th.Work)
	}
}

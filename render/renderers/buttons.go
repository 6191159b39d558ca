package renderers

import (
	"fmt"

	"github.com/lixenwraith/regroup/control"
	"github.com/lixenwraith/regroup/render"
)

// ButtonsRenderer draws the active level's button bar, wrapping onto a
// second row when needed. Disabled buttons stay clickable: pressing one is a
// guarded no-op that the status bar reports
type ButtonsRenderer struct{}

func NewButtonsRenderer() *ButtonsRenderer { return &ButtonsRenderer{} }

// Render implements render.Renderer
func (b *ButtonsRenderer) Render(ctx render.Context, buf *render.Buffer) {
	th := ctx.Theme
	lv := ctx.App.Level()
	x, y := 2, ctx.ButtonRow()

	for _, bind := range control.Buttons(lv.Info().ID) {
		key := fmt.Sprintf("[%c]", bind.Key)
		w := render.Width(key) + 1 + render.Width(bind.Label)
		if x+w > ctx.Width-2 && x > 2 {
			x, y = 2, y+1
		}

		style, keyStyle := th.Button, th.ButtonKey
		if !control.Enabled(bind, lv) {
			style, keyStyle = th.ButtonDisabled, th.ButtonDisabled
		}
		start := x
		x = buf.SetString(x, y, key, keyStyle)
		x = buf.SetString(x+1, y, bind.Label, style)
		ctx.Layout.Add(start, y, x-start, 1, bind.Command)
		x += 3
	}
}

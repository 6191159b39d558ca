package renderers

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/regroup/constant"
	"github.com/lixenwraith/regroup/control"
	"github.com/lixenwraith/regroup/level"
	"github.com/lixenwraith/regroup/render"
)

// CountingRenderer draws the cookie grid of the counting level
// Each cookie is a click target that eats it
type CountingRenderer struct{}

func NewCountingRenderer() *CountingRenderer { return &CountingRenderer{} }

func (c *CountingRenderer) IsVisible(ctx render.Context) bool {
	return ctx.App.LevelID() == level.Counting
}

// Render implements render.Renderer
func (c *CountingRenderer) Render(ctx render.Context, buf *render.Buffer) {
	th := ctx.Theme
	items := ctx.App.Tiers().Items
	top := ctx.ContentTop()

	header := fmt.Sprintf("Cookies: %d / %d", items.Len(), items.Capacity())
	buf.SetCentered(0, ctx.Width, top, header, th.Caption)

	if items.Empty() {
		buf.SetCentered(0, ctx.Width, top+2, "No cookies yet. Press [a] to bake one!", th.Help)
		return
	}

	gridW := constant.CookiesPerRow * constant.CookieCellWidth
	x0 := (ctx.Width - gridW) / 2
	glyphW := runewidth.RuneWidth(constant.CookieGlyph)
	pad := (constant.CookieCellWidth - glyphW) / 2

	for i, tok := range items.Collection().Tokens() {
		x := x0 + (i%constant.CookiesPerRow)*constant.CookieCellWidth
		y := top + 2 + (i/constant.CookiesPerRow)*2

		if i == ctx.Cursor {
			buf.Fill(x, y, constant.CookieCellWidth, 1, ' ', th.Selected)
			buf.Set(x+pad, y, constant.CookieGlyph, th.Selected)
			buf.Set(x+constant.CookieCellWidth/2-1, y+1, constant.SelectorGlyph, th.ButtonKey)
		} else {
			buf.Set(x+pad, y, constant.CookieGlyph, th.Token)
		}
		ctx.Layout.Add(x, y, constant.CookieCellWidth, 1, control.Act(level.RemoveToken(tok.ID)))
	}
}

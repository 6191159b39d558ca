// Package renderers holds the frame parts drawn by the render orchestrator.
package renderers

import (
	"fmt"

	"github.com/lixenwraith/regroup/constant"
	"github.com/lixenwraith/regroup/control"
	"github.com/lixenwraith/regroup/level"
	"github.com/lixenwraith/regroup/render"
)

const title = " regroup · subtraction lab "

// HeaderRenderer draws the title, the level tabs, the show-math toggle and
// the active level's help text
type HeaderRenderer struct{}

func NewHeaderRenderer() *HeaderRenderer { return &HeaderRenderer{} }

// Render implements render.Renderer
func (h *HeaderRenderer) Render(ctx render.Context, buf *render.Buffer) {
	th := ctx.Theme
	buf.SetString(1, 0, title, th.Title)
	h.drawSound(ctx, buf)

	active := ctx.App.LevelID()
	toggle := h.toggleLabel(ctx)
	toggleX := ctx.Width - render.Width(toggle) - 1

	tabs := level.Catalog()
	full := true
	if tabsWidth(tabs, true) > toggleX-2 {
		full = false
	}

	x := 1
	for _, info := range tabs {
		label := tabLabel(info, full || info.ID == active)
		style := th.Tab
		if info.ID == active {
			style = th.TabActive
		}
		end := buf.SetString(x, 1, label, style)
		ctx.Layout.Add(x, 1, end-x, 1, control.SelectLevel(info.ID))
		x = end + 1
	}

	style := th.Toggle
	if ctx.App.ShowWork() {
		style = th.ToggleOn
	}
	end := buf.SetString(toggleX, 1, toggle, style)
	ctx.Layout.Add(toggleX, 1, end-toggleX, 1, control.Simple(control.CmdToggleShowWork))

	buf.HLine(0, 2, ctx.Width, constant.LineGlyph, th.Frame)

	info := ctx.App.Level().Info()
	for i, line := range render.Wrap(info.Help, ctx.Width-4) {
		if i == 2 {
			break
		}
		buf.SetString(2, ctx.BodyTop()+i, line, th.Help)
	}
}

func (h *HeaderRenderer) toggleLabel(ctx render.Context) string {
	if ctx.App.ShowWork() {
		return "[m] Hide Math"
	}
	return "[m] Show Math"
}

func (h *HeaderRenderer) drawSound(ctx render.Context, buf *render.Buffer) {
	label, style := " ♪ ON ", ctx.Theme.Unmuted
	if ctx.Muted {
		label, style = " MUTED ", ctx.Theme.Muted
	}
	x := ctx.Width - render.Width(label) - 1
	end := buf.SetString(x, 0, label, style)
	ctx.Layout.Add(x, 0, end-x, 1, control.Simple(control.CmdToggleMute))
}

func tabLabel(info level.Info, full bool) string {
	if full {
		return fmt.Sprintf(" %d %s ", info.ID, info.Name)
	}
	return fmt.Sprintf(" %d ", info.ID)
}

func tabsWidth(tabs []level.Info, full bool) int {
	w := 0
	for _, info := range tabs {
		w += render.Width(tabLabel(info, full)) + 1
	}
	return w
}

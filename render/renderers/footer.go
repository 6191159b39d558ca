package renderers

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/regroup/constant"
	"github.com/lixenwraith/regroup/level"
	"github.com/lixenwraith/regroup/render"
	"github.com/lixenwraith/regroup/status"
)

// FooterRenderer draws session counters and key hints at the bottom
type FooterRenderer struct{}

func NewFooterRenderer() *FooterRenderer { return &FooterRenderer{} }

// Render implements render.Renderer
func (f *FooterRenderer) Render(ctx render.Context, buf *render.Buffer) {
	th := ctx.Theme
	y := ctx.FooterTop()
	buf.HLine(0, y, ctx.Width, constant.LineGlyph, th.Frame)

	buf.Fill(0, y+1, ctx.Width, 1, ' ', th.Status)
	x := 1
	if ctx.Status != nil {
		for _, key := range []string{status.KeyAdds, status.KeyRemoves, status.KeyBreaks, status.KeyMoves, status.KeyLevels} {
			x = buf.SetString(x, y+1, key+" ", th.Status)
			x = buf.SetString(x, y+1, fmt.Sprint(ctx.Status.Ints.Get(key).Load()), th.StatusKey)
			x += 2
		}
		if last := ctx.Status.Strings.Get(status.KeyLast).Load(); last != "" {
			buf.SetString(x, y+1, "│ "+last, th.Status)
		}
	}

	buf.SetString(1, y+2, f.hints(ctx), th.Help)
}

func (f *FooterRenderer) hints(ctx render.Context) string {
	parts := []string{
		fmt.Sprintf("[%d-%d] level", constant.LevelFirst, constant.LevelLast),
	}
	if ctx.App.LevelID() == level.Counting {
		parts = append(parts, "[←/→] select", "click a cookie to eat it")
	}
	parts = append(parts, "[m] math", "[s] sound", "[q] quit")
	return strings.Join(parts, "  ")
}

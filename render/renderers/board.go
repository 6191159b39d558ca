package renderers

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/regroup/constant"
	"github.com/lixenwraith/regroup/level"
	"github.com/lixenwraith/regroup/render"
	"github.com/lixenwraith/regroup/tier"
)

const (
	panelGap   = 2
	glyphPitch = 2
)

// BoardRenderer draws one panel per tier for the place value and regrouping
// levels, with break progress and afterglow highlights
type BoardRenderer struct{}

func NewBoardRenderer() *BoardRenderer { return &BoardRenderer{} }

func (b *BoardRenderer) IsVisible(ctx render.Context) bool {
	id := ctx.App.LevelID()
	return id == level.PlaceValue || id == level.Regroup || id == level.ThreeDigit
}

// panelGeometry sizes n panels to fit the screen width
func panelGeometry(width, n int) (panelW, perRow, x0 int) {
	panelW = constant.TierPanelWidth
	if fit := (width - 2 - panelGap*(n-1)) / n; fit < panelW {
		panelW = fit
	}
	perRow = (panelW - 2) / glyphPitch
	if perRow > constant.BreakFanOut {
		perRow = constant.BreakFanOut
	}
	if perRow < 1 {
		perRow = 1
	}
	total := n*panelW + panelGap*(n-1)
	x0 = (width - total) / 2
	return panelW, perRow, x0
}

// Render implements render.Renderer
func (b *BoardRenderer) Render(ctx render.Context, buf *render.Buffer) {
	lv := ctx.App.Level()
	tiers := lv.Tiers()
	if len(tiers) == 0 {
		return
	}
	panelW, perRow, x0 := panelGeometry(ctx.Width, len(tiers))

	rows := 1
	for _, t := range tiers {
		if r := (t.Capacity() + perRow - 1) / perRow; r > rows {
			rows = r
		}
	}

	var (
		active   level.Transition
		breaking bool
		progress float64
		glowKind tier.Kind
		glowing  bool
	)
	if br := lv.Breaker(); br != nil {
		active, breaking = br.Active()
		progress = br.Progress(ctx.Now)
		glowKind, glowing = br.Afterglow(ctx.Now)
	}

	for i, t := range tiers {
		x := x0 + i*(panelW+panelGap)
		isSource := breaking && active.Source == t
		isDest := breaking && active.Dest == t
		glow := glowing && !breaking && t.Kind() == glowKind
		b.drawPanel(ctx, buf, t, x, panelW, perRow, rows, isSource, isDest, glow)

		if isSource {
			b.drawProgress(ctx, buf, x, ctx.ContentTop()+rows+3, panelW, progress)
		}
	}
}

func (b *BoardRenderer) drawPanel(ctx render.Context, buf *render.Buffer, t *tier.Tier,
	x, w, perRow, rows int, isSource, isDest, glow bool) {
	th := ctx.Theme
	top := ctx.ContentTop()
	h := rows + 3

	frame := th.Frame
	if (isSource || isDest) && ctx.Pulse() {
		frame = th.Pulse
	}
	buf.Box(x, top, w, h, frame)
	buf.SetString(x+2, top, " "+tierTitle(t.Kind())+" ", th.Title)
	count := fmt.Sprintf(" %d/%d ", t.Len(), t.Capacity())
	buf.SetString(x+w-2-render.Width(count), top+h-1, count, frame)

	glyph, style := tierGlyph(th, t.Kind())
	n := t.Len()
	for i := 0; i < n; i++ {
		s := style
		switch {
		case isSource && i == n-1:
			s = th.Pulse
		case glow && i >= n-constant.BreakFanOut:
			s = th.Glow
		}
		gx := x + 1 + (i%perRow)*glyphPitch
		gy := top + 1 + i/perRow
		buf.Set(gx, gy, glyph, s)
	}

	caption := ctx.App.Formatter().Caption(t)
	buf.SetCentered(x+1, x+w-1, top+h-2, caption, th.Caption)
}

func (b *BoardRenderer) drawProgress(ctx render.Context, buf *render.Buffer, x, y, w int, p float64) {
	inner := w - 2
	filled := int(p * float64(inner))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", inner-filled)
	buf.SetString(x+1, y, bar, ctx.Theme.Progress)
}

func tierTitle(k tier.Kind) string {
	switch k {
	case tier.Hundreds:
		return "Hundreds"
	case tier.Tens:
		return "Tens"
	default:
		return "Ones"
	}
}

func tierGlyph(th *render.Theme, k tier.Kind) (rune, tcell.Style) {
	switch k {
	case tier.Hundreds:
		return constant.HundredGlyph, th.Hundreds
	case tier.Tens:
		return constant.TenRodGlyph, th.Tens
	default:
		return constant.OneCubeGlyph, th.Ones
	}
}

package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/regroup/constant"
)

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	buffer    *Buffer
	layout    *Layout
	theme     *Theme
	renderers []rendererEntry
	regCount  int
	frame     int64
}

// NewOrchestrator creates an orchestrator sized to the screen
func NewOrchestrator(screen tcell.Screen, theme *Theme) *Orchestrator {
	if theme == nil {
		theme = DefaultTheme()
	}
	w, h := screen.Size()
	return &Orchestrator{
		screen:    screen,
		buffer:    NewBuffer(w, h, theme.Base),
		layout:    NewLayout(),
		theme:     theme,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Layout returns the hit regions of the last frame
func (o *Orchestrator) Layout() *Layout { return o.layout }

// Theme returns the active theme
func (o *Orchestrator) Theme() *Theme { return o.theme }

// SetTheme switches palettes; takes effect on the next frame
func (o *Orchestrator) SetTheme(t *Theme) {
	if t == nil {
		return
	}
	o.theme = t
	o.buffer.SetBase(t.Base)
}

// Resize updates buffer dimensions and syncs the screen
func (o *Orchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *Orchestrator) RenderFrame(ctx Context) {
	o.frame++
	ctx.Frame = o.frame
	ctx.Width, ctx.Height = o.buffer.Size()
	ctx.Theme = o.theme
	ctx.Layout = o.layout

	o.buffer.Clear()
	o.layout.Reset()

	if ctx.Width < constant.MinScreenWidth || ctx.Height < constant.MinScreenHeight {
		o.drawTooSmall(ctx)
	} else {
		for _, entry := range o.renderers {
			if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
				continue
			}
			entry.renderer.Render(ctx, o.buffer)
		}
	}

	o.screen.SetStyle(o.theme.Base)
	o.screen.Clear()
	o.buffer.FlushToScreen(o.screen)
	o.screen.Show()
}

func (o *Orchestrator) drawTooSmall(ctx Context) {
	msg := fmt.Sprintf("Window too small: %dx%d, need %dx%d",
		ctx.Width, ctx.Height, constant.MinScreenWidth, constant.MinScreenHeight)
	o.buffer.SetCentered(0, ctx.Width, ctx.Height/2, msg, o.theme.Warning)
}

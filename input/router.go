package input

import (
	"log"

	"github.com/lixenwraith/regroup/app"
	"github.com/lixenwraith/regroup/control"
	"github.com/lixenwraith/regroup/level"
)

// Muter is the sound switch the router toggles
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

// Router executes intents against the app and owns UI-only state such as
// the cookie selection
type Router struct {
	app    *app.App
	muter  Muter
	cursor int
	gen    uint64
}

// NewRouter creates a router; muter may be nil when audio is unavailable
func NewRouter(a *app.App, muter Muter) *Router {
	return &Router{app: a, muter: muter, cursor: -1, gen: a.Generation()}
}

// Cursor returns the selected cookie index, -1 for none
// The selection is dropped when the level instance is replaced and clamped
// when cookies disappear
func (r *Router) Cursor() int {
	if r.gen != r.app.Generation() {
		r.gen = r.app.Generation()
		r.cursor = -1
	}
	if r.app.LevelID() != level.Counting {
		return -1
	}
	if n := r.app.Tiers().Items.Len(); r.cursor >= n {
		r.cursor = n - 1
	}
	return r.cursor
}

// Muted reports the sound state, true when there is no audio
func (r *Router) Muted() bool {
	return r.muter == nil || r.muter.Muted()
}

// Handle executes one intent and reports whether the app should quit
func (r *Router) Handle(in *Intent) (quit bool) {
	if in == nil {
		return false
	}
	switch in.Type {
	case IntentQuit:
		log.Printf("input: quit via %s", in.Source)
		return true
	case IntentCommand:
		r.execute(in.Command)
	}
	return false
}

func (r *Router) execute(cmd control.Command) {
	switch cmd.Kind {
	case control.CmdAction:
		r.app.Dispatch(cmd.Action)
	case control.CmdSelectLevel:
		r.app.SelectLevel(cmd.Level)
	case control.CmdToggleShowWork:
		r.app.ToggleShowWork()
	case control.CmdToggleMute:
		if r.muter != nil {
			muted := r.muter.ToggleMute()
			log.Printf("input: muted=%v", muted)
		}
	case control.CmdCursorPrev:
		r.moveCursor(-1)
	case control.CmdCursorNext:
		r.moveCursor(1)
	case control.CmdEatSelected:
		r.eatSelected()
	}
}

func (r *Router) moveCursor(delta int) {
	cur := r.Cursor()
	n := r.app.Tiers().Items.Len()
	if n == 0 || r.app.LevelID() != level.Counting {
		return
	}
	switch {
	case cur < 0 && delta > 0:
		cur = 0
	case cur < 0:
		cur = n - 1
	default:
		cur += delta
	}
	if cur < 0 {
		cur = 0
	}
	if cur >= n {
		cur = n - 1
	}
	r.cursor = cur
}

// eatSelected removes the selected cookie, or the last one when none is selected
func (r *Router) eatSelected() {
	cur := r.Cursor()
	if cur < 0 {
		r.app.Dispatch(level.Remove(r.app.Tiers().Items.Kind()))
		return
	}
	tok, ok := r.app.Tiers().Items.Collection().At(cur)
	if !ok {
		return
	}
	r.app.Dispatch(level.RemoveToken(tok.ID))
	if n := r.app.Tiers().Items.Len(); r.cursor >= n {
		r.cursor = n - 1
	}
}

package input

import (
	"testing"

	"github.com/lixenwraith/regroup/app"
	"github.com/lixenwraith/regroup/control"
	"github.com/lixenwraith/regroup/event"
	"github.com/lixenwraith/regroup/level"
	"github.com/lixenwraith/regroup/tier"
)

type fakeMuter struct{ muted bool }

func (f *fakeMuter) ToggleMute() bool { f.muted = !f.muted; return f.muted }
func (f *fakeMuter) Muted() bool      { return f.muted }

func cmd(c control.Command) *Intent { return &Intent{Type: IntentCommand, Command: c} }

func newCountingRouter(cookies int) (*Router, *app.App) {
	a := app.New(event.NewQueue(), nil, app.Options{StartLevel: level.Counting})
	for i := 0; i < cookies; i++ {
		a.Dispatch(level.Add(tier.Ones))
	}
	return NewRouter(a, &fakeMuter{}), a
}

func TestRouterCursorAndEat(t *testing.T) {
	r, a := newCountingRouter(5)
	tokens := a.Tiers().Items.Collection().Tokens()

	if r.Cursor() != -1 {
		t.Errorf("Expected no selection initially, got %d", r.Cursor())
	}

	r.Handle(cmd(control.Simple(control.CmdCursorNext)))
	r.Handle(cmd(control.Simple(control.CmdCursorNext)))
	if r.Cursor() != 1 {
		t.Fatalf("Expected cursor 1, got %d", r.Cursor())
	}

	r.Handle(cmd(control.Simple(control.CmdEatSelected)))
	remaining := a.Tiers().Items.Collection().Tokens()
	if len(remaining) != 4 {
		t.Fatalf("Expected 4 cookies, got %d", len(remaining))
	}
	if remaining[1].ID != tokens[2].ID {
		t.Errorf("Expected selected cookie removed and order kept")
	}
	if r.Cursor() != 1 {
		t.Errorf("Expected cursor to stay on index 1, got %d", r.Cursor())
	}
}

func TestRouterCursorClamps(t *testing.T) {
	r, a := newCountingRouter(2)

	r.Handle(cmd(control.Simple(control.CmdCursorPrev)))
	if r.Cursor() != 1 {
		t.Errorf("Expected prev from none to select last, got %d", r.Cursor())
	}
	r.Handle(cmd(control.Simple(control.CmdCursorNext)))
	if r.Cursor() != 1 {
		t.Errorf("Expected cursor clamped at last, got %d", r.Cursor())
	}

	a.Dispatch(level.Remove(tier.Ones))
	if r.Cursor() != 0 {
		t.Errorf("Expected cursor clamped after removal, got %d", r.Cursor())
	}

	a.Dispatch(level.Remove(tier.Ones))
	if r.Cursor() != -1 {
		t.Errorf("Expected no selection when empty, got %d", r.Cursor())
	}
}

func TestRouterEatWithoutSelectionRemovesLast(t *testing.T) {
	r, a := newCountingRouter(3)
	first, _ := a.Tiers().Items.Collection().At(0)

	r.Handle(cmd(control.Simple(control.CmdEatSelected)))
	if a.Tiers().Items.Len() != 2 {
		t.Errorf("Expected 2 cookies, got %d", a.Tiers().Items.Len())
	}
	if got, _ := a.Tiers().Items.Collection().At(0); got.ID != first.ID {
		t.Error("Expected the last cookie to be eaten")
	}
}

func TestRouterSelectionResetsOnLevelChange(t *testing.T) {
	r, a := newCountingRouter(3)
	r.Handle(cmd(control.Simple(control.CmdCursorNext)))

	r.Handle(cmd(control.SelectLevel(level.Counting)))
	for i := 0; i < 3; i++ {
		a.Dispatch(level.Add(tier.Ones))
	}
	if r.Cursor() != -1 {
		t.Errorf("Expected selection dropped after level restart, got %d", r.Cursor())
	}
}

func TestRouterAppCommands(t *testing.T) {
	r, a := newCountingRouter(0)
	muter := r.muter.(*fakeMuter)

	r.Handle(cmd(control.SelectLevel(level.ThreeDigit)))
	if a.LevelID() != level.ThreeDigit {
		t.Errorf("Expected level 5, got %d", a.LevelID())
	}

	r.Handle(cmd(control.Simple(control.CmdToggleShowWork)))
	if !a.ShowWork() {
		t.Error("Expected show-work on")
	}

	r.Handle(cmd(control.Act(level.Add(tier.Hundreds))))
	if a.Level().Total() != 100 {
		t.Errorf("Expected total 100, got %d", a.Level().Total())
	}

	r.Handle(cmd(control.Simple(control.CmdToggleMute)))
	if !muter.muted || !r.Muted() {
		t.Error("Expected muted after toggle")
	}

	if !r.Handle(&Intent{Type: IntentQuit}) {
		t.Error("Expected quit")
	}
	if r.Handle(nil) {
		t.Error("Expected nil intent to be ignored")
	}
}

func TestRouterNilMuterIsMuted(t *testing.T) {
	a := app.New(event.NewQueue(), nil, app.Options{})
	r := NewRouter(a, nil)
	r.Handle(cmd(control.Simple(control.CmdToggleMute)))
	if !r.Muted() {
		t.Error("Expected muted without audio")
	}
}

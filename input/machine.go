package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/regroup/control"
	"github.com/lixenwraith/regroup/level"
	"github.com/lixenwraith/regroup/render"
)

// HitTester resolves a screen position to a command
type HitTester interface {
	HitTest(x, y int) (control.Command, bool)
}

var _ HitTester = (*render.Layout)(nil)

// Machine is the input parser
// Parses tcell events into semantic Intents against the active level's bindings
type Machine struct {
	buttons tcell.ButtonMask
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no binding
func (m *Machine) Process(ev tcell.Event, active level.ID, hits HitTester) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize, Source: SourceSystem}
	case *tcell.EventKey:
		return m.processKey(ev, active)
	case *tcell.EventMouse:
		return m.processMouse(ev, hits)
	case *tcell.EventError:
		return &Intent{Type: IntentQuit, Source: SourceSystem}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey, active level.ID) *Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit, Source: SourceKey}
	case tcell.KeyRune:
		b, ok := control.Lookup(active, ev.Rune())
		if !ok {
			return nil
		}
		return command(b.Command, SourceKey)
	}

	if cmd, ok := specialKey(ev.Key(), active); ok {
		return command(cmd, SourceKey)
	}
	return nil
}

// specialKey maps non-rune keys; arrows mean different things per level
func specialKey(key tcell.Key, active level.ID) (control.Command, bool) {
	switch active {
	case level.Counting:
		switch key {
		case tcell.KeyLeft:
			return control.Simple(control.CmdCursorPrev), true
		case tcell.KeyRight:
			return control.Simple(control.CmdCursorNext), true
		case tcell.KeyEnter, tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
			return control.Simple(control.CmdEatSelected), true
		}
	case level.NumberLine:
		switch key {
		case tcell.KeyLeft:
			return control.Act(level.Move(-1)), true
		case tcell.KeyRight:
			return control.Act(level.Move(1)), true
		}
	}
	return control.Command{}, false
}

// processMouse reports a click on the press edge of the primary button only,
// so holding the button does not repeat the command
func (m *Machine) processMouse(ev *tcell.EventMouse, hits HitTester) *Intent {
	prev := m.buttons
	m.buttons = ev.Buttons()

	if m.buttons&tcell.Button1 == 0 || prev&tcell.Button1 != 0 || hits == nil {
		return nil
	}
	x, y := ev.Position()
	cmd, ok := hits.HitTest(x, y)
	if !ok {
		return nil
	}
	return command(cmd, SourceMouse)
}

func command(cmd control.Command, src Source) *Intent {
	if cmd.Kind == control.CmdQuit {
		return &Intent{Type: IntentQuit, Source: src}
	}
	return &Intent{Type: IntentCommand, Command: cmd, Source: src}
}

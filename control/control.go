// Package control defines the commands a user can issue and the key and
// button bindings that produce them. Both the input handler and the
// renderers read the same tables, so on-screen labels always match the keys.
package control

import (
	"github.com/lixenwraith/regroup/constant"
	"github.com/lixenwraith/regroup/level"
	"github.com/lixenwraith/regroup/tier"
)

// CommandKind classifies commands
type CommandKind uint8

const (
	CmdNone           CommandKind = iota
	CmdAction                     // route Action to the active level
	CmdSelectLevel                // switch to Level
	CmdToggleShowWork             // flip show-work
	CmdToggleMute                 // flip sound
	CmdCursorPrev                 // move the cookie selection left
	CmdCursorNext                 // move the cookie selection right
	CmdEatSelected                // remove the selected cookie
	CmdQuit
)

// Command is one user intent, independent of how it was issued
type Command struct {
	Kind   CommandKind
	Action level.Action
	Level  level.ID
}

func Act(a level.Action) Command      { return Command{Kind: CmdAction, Action: a} }
func SelectLevel(id level.ID) Command { return Command{Kind: CmdSelectLevel, Level: id} }
func Simple(kind CommandKind) Command { return Command{Kind: kind} }

// Binding ties a key and an on-screen label to a command
type Binding struct {
	Key     rune
	Label   string
	Command Command
}

// Global bindings are active on every level
func Global() []Binding {
	bindings := make([]Binding, 0, constant.LevelLast+3)
	for _, info := range level.Catalog() {
		bindings = append(bindings, Binding{
			Key:     rune('0' + int(info.ID)),
			Label:   info.Name,
			Command: SelectLevel(info.ID),
		})
	}
	return append(bindings,
		Binding{Key: 'm', Label: "Show Math", Command: Simple(CmdToggleShowWork)},
		Binding{Key: 's', Label: "Sound", Command: Simple(CmdToggleMute)},
		Binding{Key: 'q', Label: "Quit", Command: Simple(CmdQuit)},
	)
}

// Buttons returns the level's button row in display order
func Buttons(id level.ID) []Binding {
	switch id {
	case level.Counting:
		return []Binding{
			{Key: 'a', Label: "+ Add Cookie", Command: Act(level.Add(tier.Ones))},
			{Key: 'x', Label: "Eat Selected", Command: Simple(CmdEatSelected)},
			{Key: 'r', Label: "Reset", Command: Act(level.Reset())},
		}
	case level.NumberLine:
		return []Binding{
			{Key: 'h', Label: "← Back 1", Command: Act(level.Move(-1))},
			{Key: 'H', Label: "← Back 5", Command: Act(level.Move(-constant.NumberLineJump))},
			{Key: 'l', Label: "Forward 1 →", Command: Act(level.Move(1))},
			{Key: 'L', Label: "Forward 5 →", Command: Act(level.Move(constant.NumberLineJump))},
			{Key: 'r', Label: "Reset", Command: Act(level.Reset())},
		}
	case level.PlaceValue:
		return []Binding{
			{Key: 't', Label: "+ Ten", Command: Act(level.Add(tier.Tens))},
			{Key: 'T', Label: "- Ten", Command: Act(level.Remove(tier.Tens))},
			{Key: 'o', Label: "+ One", Command: Act(level.Add(tier.Ones))},
			{Key: 'O', Label: "- One", Command: Act(level.Remove(tier.Ones))},
			{Key: 'r', Label: "Reset", Command: Act(level.Reset())},
		}
	case level.Regroup:
		return []Binding{
			{Key: 't', Label: "+ Ten", Command: Act(level.Add(tier.Tens))},
			{Key: 'T', Label: "- Ten", Command: Act(level.Remove(tier.Tens))},
			{Key: 'o', Label: "+ One", Command: Act(level.Add(tier.Ones))},
			{Key: 'O', Label: "- One", Command: Act(level.Remove(tier.Ones))},
			{Key: 'b', Label: "Break a Ten", Command: Act(level.Break(tier.Tens))},
			{Key: 'r', Label: "Reset", Command: Act(level.Reset())},
		}
	case level.ThreeDigit:
		return []Binding{
			{Key: 'u', Label: "+ 100", Command: Act(level.Add(tier.Hundreds))},
			{Key: 'U', Label: "- 100", Command: Act(level.Remove(tier.Hundreds))},
			{Key: 't', Label: "+ 10", Command: Act(level.Add(tier.Tens))},
			{Key: 'T', Label: "- 10", Command: Act(level.Remove(tier.Tens))},
			{Key: 'o', Label: "+ 1", Command: Act(level.Add(tier.Ones))},
			{Key: 'O', Label: "- 1", Command: Act(level.Remove(tier.Ones))},
			{Key: 'B', Label: "Break 100→10 Tens", Command: Act(level.Break(tier.Hundreds))},
			{Key: 'b', Label: "Break 10→10 Ones", Command: Act(level.Break(tier.Tens))},
			{Key: 'r', Label: "Reset", Command: Act(level.Reset())},
		}
	}
	return nil
}

// Lookup finds the binding for key on the given level; level bindings win
func Lookup(id level.ID, key rune) (Binding, bool) {
	for _, b := range Buttons(id) {
		if b.Key == key {
			return b, true
		}
	}
	for _, b := range Global() {
		if b.Key == key {
			return b, true
		}
	}
	return Binding{}, false
}

// Enabled reports whether a binding currently has an effect worth offering;
// disabled buttons are drawn dimmed but remain safe to press
func Enabled(b Binding, lv level.Level) bool {
	if b.Command.Kind != CmdAction || b.Command.Action.Kind != level.ActionBreak {
		return true
	}
	br, ok := lv.(level.Breakable)
	return ok && br.CanBreak(b.Command.Action.Tier)
}

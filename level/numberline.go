package level

import (
	"github.com/lixenwraith/regroup/constant"
	"github.com/lixenwraith/regroup/event"
	"github.com/lixenwraith/regroup/tier"
)

// numberLineLevel is level 2: a frog on a line from 0 to 20
// The position is level-local and starts over at 10 for every new instance
type numberLineLevel struct {
	env      Env
	position int
}

func newNumberLine(env Env) *numberLineLevel {
	return &numberLineLevel{env: env, position: constant.NumberLineStart}
}

func (l *numberLineLevel) Info() Info                     { return Lookup(NumberLine) }
func (l *numberLineLevel) Tiers() []*tier.Tier            { return nil }
func (l *numberLineLevel) Total() int                     { return l.position }
func (l *numberLineLevel) Work(*Formatter) (string, bool) { return "", false }
func (l *numberLineLevel) Update() bool                   { return false }
func (l *numberLineLevel) Breaker() *Breaker              { return nil }

// Position returns the frog's position
func (l *numberLineLevel) Position() int { return l.position }

func (l *numberLineLevel) Apply(a Action) bool {
	switch a.Kind {
	case ActionMove:
		return l.moveTo(l.position + a.Delta)
	case ActionReset:
		from := l.position
		l.position = constant.NumberLineStart
		l.env.emit(event.EventLevelReset, &event.LevelPayload{From: int(NumberLine), To: int(NumberLine)})
		return from != l.position
	}
	return false
}

// moveTo clamps target into [NumberLineMin, NumberLineMax]
func (l *numberLineLevel) moveTo(target int) bool {
	if target < constant.NumberLineMin {
		target = constant.NumberLineMin
	}
	if target > constant.NumberLineMax {
		target = constant.NumberLineMax
	}
	if target == l.position {
		l.env.emit(event.EventActionBlocked, &event.BlockedPayload{
			Level:  int(NumberLine),
			Action: ActionMove.String(),
			Reason: event.BlockedBoundary,
		})
		return false
	}
	from := l.position
	l.position = target
	l.env.emit(event.EventPositionMoved, &event.PositionPayload{From: from, To: target})
	return true
}

// Positioner is implemented by levels with a number line
type Positioner interface {
	Position() int
}

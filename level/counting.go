package level

import (
	"github.com/lixenwraith/regroup/event"
	"github.com/lixenwraith/regroup/tier"
)

// countingLevel is level 1: a flat collection of cookies, any of which can be eaten
type countingLevel struct {
	env   Env
	items *tier.Tier
}

func newCounting(env Env, items *tier.Tier) *countingLevel {
	return &countingLevel{env: env, items: items}
}

func (l *countingLevel) Info() Info                     { return Lookup(Counting) }
func (l *countingLevel) Tiers() []*tier.Tier            { return []*tier.Tier{l.items} }
func (l *countingLevel) Total() int                     { return l.items.Len() }
func (l *countingLevel) Work(*Formatter) (string, bool) { return "", false }
func (l *countingLevel) Update() bool                   { return false }
func (l *countingLevel) Breaker() *Breaker              { return nil }

func (l *countingLevel) Apply(a Action) bool {
	switch a.Kind {
	case ActionAdd:
		if !l.items.Add() {
			l.blocked(a, event.BlockedFull)
			return false
		}
		l.changed(event.EventTokenAdded)
		return true

	case ActionRemove:
		if !l.items.Remove() {
			l.blocked(a, event.BlockedEmpty)
			return false
		}
		l.changed(event.EventTokenRemoved)
		return true

	case ActionRemoveToken:
		if !l.items.RemoveToken(a.Token) {
			return false
		}
		l.changed(event.EventTokenRemoved)
		return true

	case ActionReset:
		l.items.Reset()
		l.env.emit(event.EventLevelReset, &event.LevelPayload{From: int(Counting), To: int(Counting)})
		return true
	}
	return false
}

func (l *countingLevel) changed(t event.EventType) {
	l.env.emit(t, &event.TierPayload{
		Level: int(Counting),
		Kind:  l.items.Kind(),
		Len:   l.items.Len(),
		Value: l.items.Value(),
	})
}

func (l *countingLevel) blocked(a Action, reason event.BlockedReason) {
	l.env.emit(event.EventActionBlocked, &event.BlockedPayload{
		Level:  int(Counting),
		Action: a.Kind.String(),
		Reason: reason,
	})
}

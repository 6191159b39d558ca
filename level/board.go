package level

import (
	"github.com/lixenwraith/regroup/event"
	"github.com/lixenwraith/regroup/tier"
)

// boardLevel composes place-value tiers, highest first
// With a breaker it is a regrouping level (4, 5); without, place value (3)
type boardLevel struct {
	id      ID
	env     Env
	tiers   []*tier.Tier
	breaker *Breaker
}

func newPlaceValue(env Env, tens, ones *tier.Tier) *boardLevel {
	return &boardLevel{id: PlaceValue, env: env, tiers: []*tier.Tier{tens, ones}}
}

func newRegrouping(id ID, env Env, tiers ...*tier.Tier) *boardLevel {
	return &boardLevel{
		id:      id,
		env:     env,
		tiers:   tiers,
		breaker: NewBreaker(env.delay()),
	}
}

func (l *boardLevel) Info() Info          { return Lookup(l.id) }
func (l *boardLevel) Tiers() []*tier.Tier { return l.tiers }
func (l *boardLevel) Breaker() *Breaker   { return l.breaker }

func (l *boardLevel) Total() int {
	total := 0
	for _, t := range l.tiers {
		total += t.Value()
	}
	return total
}

func (l *boardLevel) Work(f *Formatter) (string, bool) {
	parts := make([]int, len(l.tiers))
	for i, t := range l.tiers {
		parts[i] = t.Value()
	}
	return f.Expression(parts, l.Total()), true
}

func (l *boardLevel) tier(k tier.Kind) *tier.Tier {
	for _, t := range l.tiers {
		if t.Kind() == k {
			return t
		}
	}
	return nil
}

// Transition returns the break transition whose source is k
func (l *boardLevel) Transition(k tier.Kind) (Transition, bool) {
	lower, ok := k.Lower()
	if !ok {
		return Transition{}, false
	}
	src, dst := l.tier(k), l.tier(lower)
	if src == nil || dst == nil {
		return Transition{}, false
	}
	return Transition{Source: src, Dest: dst}, true
}

// CanBreak reports whether a break from k would start now
func (l *boardLevel) CanBreak(k tier.Kind) bool {
	if l.breaker == nil {
		return false
	}
	tr, ok := l.Transition(k)
	if !ok {
		return false
	}
	can, _ := l.breaker.CanStart(tr)
	return can
}

func (l *boardLevel) Apply(a Action) bool {
	switch a.Kind {
	case ActionAdd, ActionRemove:
		return l.applyTier(a)
	case ActionBreak:
		return l.startBreak(a)
	case ActionReset:
		return l.reset()
	}
	return false
}

func (l *boardLevel) applyTier(a Action) bool {
	t := l.tier(a.Tier)
	if t == nil {
		return false
	}
	if l.breaker != nil && l.breaker.Involves(t) {
		l.blocked(a, event.BlockedBreaking)
		return false
	}

	if a.Kind == ActionAdd {
		if !t.Add() {
			l.blocked(a, event.BlockedFull)
			return false
		}
		l.changed(event.EventTokenAdded, t)
		return true
	}

	if !t.Remove() {
		l.blocked(a, event.BlockedEmpty)
		return false
	}
	l.changed(event.EventTokenRemoved, t)
	return true
}

func (l *boardLevel) startBreak(a Action) bool {
	if l.breaker == nil {
		return false
	}
	tr, ok := l.Transition(a.Tier)
	if !ok {
		return false
	}
	started, reason := l.breaker.Start(tr, l.env.now())
	if !started {
		l.blocked(a, reason)
		return false
	}
	l.env.emit(event.EventBreakStarted, l.breakPayload(tr))
	return true
}

func (l *boardLevel) Update() bool {
	if l.breaker == nil {
		return false
	}
	tr, done := l.breaker.Update(l.env.now())
	if !done {
		return false
	}
	l.env.emit(event.EventBreakFinished, l.breakPayload(tr))
	return true
}

func (l *boardLevel) reset() bool {
	if l.breaker != nil {
		if tr, ok := l.breaker.Cancel(); ok {
			l.env.emit(event.EventBreakCancelled, l.breakPayload(tr))
		}
	}
	for _, t := range l.tiers {
		t.Reset()
	}
	l.env.emit(event.EventLevelReset, &event.LevelPayload{From: int(l.id), To: int(l.id)})
	return true
}

func (l *boardLevel) breakPayload(tr Transition) *event.BreakPayload {
	return &event.BreakPayload{Level: int(l.id), Source: tr.Source.Kind(), Dest: tr.Dest.Kind()}
}

func (l *boardLevel) changed(t event.EventType, tr *tier.Tier) {
	l.env.emit(t, &event.TierPayload{
		Level: int(l.id),
		Kind:  tr.Kind(),
		Len:   tr.Len(),
		Value: tr.Value(),
	})
}

func (l *boardLevel) blocked(a Action, reason event.BlockedReason) {
	l.env.emit(event.EventActionBlocked, &event.BlockedPayload{
		Level:  int(l.id),
		Action: a.Kind.String(),
		Reason: reason,
	})
}

// Breakable is implemented by levels offering break transitions
type Breakable interface {
	CanBreak(k tier.Kind) bool
	Transition(k tier.Kind) (Transition, bool)
}

package level

import (
	"time"

	"github.com/lixenwraith/regroup/constant"
	"github.com/lixenwraith/regroup/engine"
	"github.com/lixenwraith/regroup/event"
	"github.com/lixenwraith/regroup/tier"
)

// Level is one teaching variant
type Level interface {
	// Info returns the catalog entry
	Info() Info

	// Tiers returns the composed tiers, highest denomination first
	Tiers() []*tier.Tier

	// Total recomputes the composite value from current state
	Total() int

	// Work returns the decomposition expression; false for levels without one
	Work(f *Formatter) (string, bool)

	// Apply executes an action and reports whether state changed
	Apply(a Action) bool

	// Update advances timed transitions and reports whether state changed
	Update() bool

	// Breaker returns the break state machine, nil for levels without breaks
	Breaker() *Breaker
}

// Env carries the collaborators shared by all levels of one app
type Env struct {
	Queue      *event.Queue
	Clock      engine.TimeProvider
	BreakDelay time.Duration
}

func (e Env) emit(t event.EventType, payload any) {
	if e.Queue != nil {
		e.Queue.Emit(t, payload)
	}
}

func (e Env) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}

func (e Env) delay() time.Duration {
	if e.BreakDelay <= 0 {
		return constant.BreakDelay
	}
	return e.BreakDelay
}

// Tiers groups the app-wide tiers a level can compose
type Tiers struct {
	Items    *tier.Tier
	Hundreds *tier.Tier
	Tens     *tier.Tier
	Ones     *tier.Tier
}

// NewTiers creates the four app-wide tiers, empty
func NewTiers() Tiers {
	return Tiers{
		Items:    tier.New(tier.Ones, constant.CapacityCounting),
		Hundreds: tier.New(tier.Hundreds, constant.CapacityBasic),
		Tens:     tier.New(tier.Tens, constant.CapacityBasic),
		Ones:     tier.New(tier.Ones, constant.CapacityBasic),
	}
}

// ResetAll empties every tier, used or not by the active level
func (t Tiers) ResetAll() {
	for _, tr := range []*tier.Tier{t.Items, t.Hundreds, t.Tens, t.Ones} {
		tr.Reset()
	}
}

// New builds a fresh level instance over the given tiers
// Tiers must be empty: capacities are set for the level being built
// Unknown IDs fall back to level 1
func New(id ID, tiers Tiers, env Env) Level {
	switch id {
	case NumberLine:
		return newNumberLine(env)
	case PlaceValue:
		tiers.Tens.SetCapacity(constant.CapacityBasic)
		tiers.Ones.SetCapacity(constant.CapacityBasic)
		return newPlaceValue(env, tiers.Tens, tiers.Ones)
	case Regroup:
		tiers.Tens.SetCapacity(constant.CapacityBasic)
		tiers.Ones.SetCapacity(constant.CapacityRegroup)
		return newRegrouping(Regroup, env, tiers.Tens, tiers.Ones)
	case ThreeDigit:
		tiers.Hundreds.SetCapacity(constant.CapacityBasic)
		tiers.Tens.SetCapacity(constant.CapacityRegroup)
		tiers.Ones.SetCapacity(constant.CapacityRegroup)
		return newRegrouping(ThreeDigit, env, tiers.Hundreds, tiers.Tens, tiers.Ones)
	default:
		tiers.Items.SetCapacity(constant.CapacityCounting)
		return newCounting(env, tiers.Items)
	}
}

package level

import (
	"time"

	"github.com/lixenwraith/regroup/constant"
	"github.com/lixenwraith/regroup/event"
	"github.com/lixenwraith/regroup/tier"
)

// BreakState is the state of a Breaker
type BreakState uint8

const (
	Idle BreakState = iota
	Breaking
)

func (s BreakState) String() string {
	if s == Breaking {
		return "breaking"
	}
	return "idle"
}

// Transition pairs the source tier with the tier one place below it
type Transition struct {
	Source *tier.Tier
	Dest   *tier.Tier
}

// Breaker converts one token of a source tier into ten tokens of the tier
// below after a fixed delay. One Breaker serves every transition of a level,
// so at most one break is in flight per level instance
//
// The composite value is conserved exactly: completion removes one token
// worth d and appends BreakFanOut tokens worth d/10. Start refuses when the
// destination lacks room for all of them, and the level locks both tiers of
// the running transition, so completion can never be partial
type Breaker struct {
	state     BreakState
	active    Transition
	startedAt time.Time
	deadline  time.Time // fixed at Start; delay changes never move it
	delay     time.Duration

	// Destination and completion time of the last finished break, for afterglow
	lastDest     tier.Kind
	lastFinished time.Time
}

// NewBreaker creates an idle breaker; non-positive delays use the default
func NewBreaker(delay time.Duration) *Breaker {
	if delay <= 0 {
		delay = constant.BreakDelay
	}
	return &Breaker{delay: delay}
}

func (b *Breaker) State() BreakState    { return b.state }
func (b *Breaker) Busy() bool           { return b.state == Breaking }
func (b *Breaker) Delay() time.Duration { return b.delay }

// Active returns the running transition
func (b *Breaker) Active() (Transition, bool) {
	if b.state != Breaking {
		return Transition{}, false
	}
	return b.active, true
}

// Involves reports whether t is the source or destination of the running break
func (b *Breaker) Involves(t *tier.Tier) bool {
	if b.state != Breaking {
		return false
	}
	return b.active.Source == t || b.active.Dest == t
}

// CanStart reports whether Start would succeed, with the reason when not
func (b *Breaker) CanStart(tr Transition) (bool, event.BlockedReason) {
	switch {
	case b.state == Breaking:
		return false, event.BlockedBreaking
	case tr.Source == nil || tr.Dest == nil || tr.Source.Empty():
		return false, event.BlockedEmpty
	case tr.Dest.Room() < constant.BreakFanOut:
		return false, event.BlockedNoRoom
	}
	return true, 0
}

// Start enters Breaking if permitted; otherwise it is a no-op
func (b *Breaker) Start(tr Transition, now time.Time) (bool, event.BlockedReason) {
	if ok, reason := b.CanStart(tr); !ok {
		return false, reason
	}
	b.state = Breaking
	b.active = tr
	b.startedAt = now
	b.deadline = now.Add(b.delay)
	return true, 0
}

// Update completes the running break once its delay has elapsed
// Returns the completed transition and true exactly once per break
func (b *Breaker) Update(now time.Time) (Transition, bool) {
	if b.state != Breaking || now.Before(b.deadline) {
		return Transition{}, false
	}

	tr := b.active
	tr.Source.Remove()
	tr.Dest.Fill(constant.BreakFanOut)

	b.state = Idle
	b.active = Transition{}
	b.lastDest = tr.Dest.Kind()
	b.lastFinished = now
	return tr, true
}

// Cancel drops the running break without touching the tiers
func (b *Breaker) Cancel() (Transition, bool) {
	if b.state != Breaking {
		return Transition{}, false
	}
	tr := b.active
	b.state = Idle
	b.active = Transition{}
	return tr, true
}

// SetDelay changes the delay applied to subsequent breaks; a running break
// keeps the deadline it started with
func (b *Breaker) SetDelay(d time.Duration) {
	if d > 0 {
		b.delay = d
	}
}

// Progress returns elapsed fraction of the running break in [0, 1]
func (b *Breaker) Progress(now time.Time) float64 {
	if b.state != Breaking {
		return 0
	}
	span := b.deadline.Sub(b.startedAt)
	if span <= 0 {
		return 1
	}
	p := float64(now.Sub(b.startedAt)) / float64(span)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Afterglow reports the tier that just received broken-down tokens
func (b *Breaker) Afterglow(now time.Time) (tier.Kind, bool) {
	if b.lastFinished.IsZero() || now.Sub(b.lastFinished) > constant.BreakAfterglow {
		return 0, false
	}
	return b.lastDest, true
}

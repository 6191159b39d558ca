// Package status keeps session counters shown in the status bar.
package status

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/regroup/event"
)

// Metric keys
const (
	KeyAdds    = "adds"
	KeyRemoves = "removes"
	KeyBreaks  = "breaks"
	KeyLevels  = "levels"
	KeyMoves   = "moves"
	KeyLast    = "last"
)

// Registry is the central metrics facade
// Handlers cache pointers during init; event dispatch writes directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}

// Tracker counts app events into a registry
type Tracker struct {
	adds, removes, breaks, levels, moves *atomic.Int64
	last                                 *AtomicString
}

// NewTracker resolves metric pointers once
func NewTracker(r *Registry) *Tracker {
	return &Tracker{
		adds:    r.Ints.Get(KeyAdds),
		removes: r.Ints.Get(KeyRemoves),
		breaks:  r.Ints.Get(KeyBreaks),
		levels:  r.Ints.Get(KeyLevels),
		moves:   r.Ints.Get(KeyMoves),
		last:    r.Strings.Get(KeyLast),
	}
}

func (t *Tracker) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTokenAdded,
		event.EventTokenRemoved,
		event.EventBreakFinished,
		event.EventLevelSelected,
		event.EventPositionMoved,
	}
}

func (t *Tracker) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.EventTokenAdded:
		t.adds.Add(1)
		if p, ok := ev.Payload.(*event.TierPayload); ok {
			t.last.Store(fmt.Sprintf("+1 %s", p.Kind))
		}
	case event.EventTokenRemoved:
		t.removes.Add(1)
		if p, ok := ev.Payload.(*event.TierPayload); ok {
			t.last.Store(fmt.Sprintf("-1 %s", p.Kind))
		}
	case event.EventBreakFinished:
		t.breaks.Add(1)
		if p, ok := ev.Payload.(*event.BreakPayload); ok {
			t.last.Store(fmt.Sprintf("1 %s -> 10 %s", p.Source, p.Dest))
		}
	case event.EventLevelSelected:
		t.levels.Add(1)
		if p, ok := ev.Payload.(*event.LevelPayload); ok {
			t.last.Store(fmt.Sprintf("level %d", p.To))
		}
	case event.EventPositionMoved:
		t.moves.Add(1)
		if p, ok := ev.Payload.(*event.PositionPayload); ok {
			t.last.Store(fmt.Sprintf("%d -> %d", p.From, p.To))
		}
	}
}

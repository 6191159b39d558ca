package level

import (
	"testing"
	"time"

	"github.com/lixenwraith/regroup/engine"
	"github.com/lixenwraith/regroup/event"
)

// newTestEnv returns an env driven by a mock clock and a fresh queue
func newTestEnv(t *testing.T) (Env, *engine.MockTimeProvider, *event.Queue) {
	t.Helper()
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	queue := event.NewQueue()
	return Env{Queue: queue, Clock: clock, BreakDelay: 600 * time.Millisecond}, clock, queue
}

// countEvents drains the queue and counts events of type et
func countEvents(q *event.Queue, et event.EventType) int {
	n := 0
	for _, ev := range q.Consume() {
		if ev.Type == et {
			n++
		}
	}
	return n
}

func applyN(l Level, a Action, n int) {
	for i := 0; i < n; i++ {
		l.Apply(a)
	}
}

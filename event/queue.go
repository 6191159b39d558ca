package event

import (
	"log"
	"sync"

	"github.com/lixenwraith/regroup/constant"
)

// Queue buffers events until the loop drains them once per frame.
// Producers are the app, the levels and the reload handler, all on the loop
// goroutine; the mutex only keeps Emit safe if that ever changes.
//
// The buffer holds at most constant.EventQueueSize events. A frame never
// produces that many, so overflow means a stalled consumer: the oldest event
// is dropped and the loss is logged
type Queue struct {
	mu      sync.Mutex
	pending []Event
	frame   int64
	dropped int
}

func NewQueue() *Queue {
	return &Queue{}
}

// SetFrame sets the frame number stamped on events passed to Emit
func (q *Queue) SetFrame(frame int64) {
	q.mu.Lock()
	q.frame = frame
	q.mu.Unlock()
}

// Push appends ev as given
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) >= constant.EventQueueSize {
		lost := q.pending[0]
		q.pending = append(q.pending[:0], q.pending[1:]...)
		q.dropped++
		log.Printf("event: queue full, dropped %s from frame %d (%d dropped)", lost.Type, lost.Frame, q.dropped)
	}
	q.pending = append(q.pending, ev)
}

// Emit pushes an event stamped with the current frame
func (q *Queue) Emit(t EventType, payload any) {
	q.mu.Lock()
	frame := q.frame
	q.mu.Unlock()
	q.Push(Event{Type: t, Payload: payload, Frame: frame})
}

// Consume returns all pending events in FIFO order, nil when there are none.
// The caller owns the returned slice
func (q *Queue) Consume() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	events := q.pending
	q.pending = nil
	return events
}

// Len returns the pending event count
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Dropped returns how many events were lost to overflow
func (q *Queue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

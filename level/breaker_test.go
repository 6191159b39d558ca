package level

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/regroup/event"
	"github.com/lixenwraith/regroup/tier"
)

func TestBreakConservesValue(t *testing.T) {
	env, clock, _ := newTestEnv(t)
	tiers := NewTiers()
	l := New(Regroup, tiers, env)

	l.Apply(Add(tier.Tens))
	applyN(l, Add(tier.Ones), 2)
	if l.Total() != 12 {
		t.Fatalf("Expected total 12 before break, got %d", l.Total())
	}

	if !l.Apply(Break(tier.Tens)) {
		t.Fatal("Expected break to start")
	}

	clock.Advance(599 * time.Millisecond)
	if l.Update() {
		t.Fatal("Expected break to still be pending before the delay")
	}
	if tiers.Tens.Len() != 1 || tiers.Ones.Len() != 2 {
		t.Errorf("Expected tiers untouched while breaking, got tens=%d ones=%d", tiers.Tens.Len(), tiers.Ones.Len())
	}

	clock.Advance(1 * time.Millisecond)
	if !l.Update() {
		t.Fatal("Expected break to complete at 600ms")
	}

	if tiers.Tens.Len() != 0 {
		t.Errorf("Expected 0 tens after break, got %d", tiers.Tens.Len())
	}
	if tiers.Ones.Len() != 12 {
		t.Errorf("Expected 12 ones after break, got %d", tiers.Ones.Len())
	}
	if l.Total() != 12 {
		t.Errorf("Expected total to stay 12, got %d", l.Total())
	}
	if l.Breaker().Busy() {
		t.Error("Expected breaker to be idle after completion")
	}
}

func TestBreakDoubleTriggerIsGuarded(t *testing.T) {
	env, clock, queue := newTestEnv(t)
	tiers := NewTiers()
	l := New(Regroup, tiers, env)

	applyN(l, Add(tier.Tens), 3)
	queue.Consume()

	if !l.Apply(Break(tier.Tens)) {
		t.Fatal("Expected first trigger to start a break")
	}
	if l.Apply(Break(tier.Tens)) {
		t.Error("Expected second trigger while breaking to be a no-op")
	}
	if got := countEvents(queue, event.EventActionBlocked); got != 1 {
		t.Errorf("Expected 1 blocked event, got %d", got)
	}

	clock.Advance(time.Second)
	l.Update()
	l.Update()

	if tiers.Tens.Len() != 2 {
		t.Errorf("Expected exactly one ten removed, got %d tens", tiers.Tens.Len())
	}
	if tiers.Ones.Len() != 10 {
		t.Errorf("Expected exactly ten ones added, got %d", tiers.Ones.Len())
	}
}

func TestBreakRequiresNonEmptySource(t *testing.T) {
	env, _, queue := newTestEnv(t)
	l := New(Regroup, NewTiers(), env)

	if l.Apply(Break(tier.Tens)) {
		t.Error("Expected break on empty tens to be a no-op")
	}
	if l.Breaker().Busy() {
		t.Error("Expected breaker to stay idle")
	}

	events := queue.Consume()
	if len(events) != 1 || events[0].Type != event.EventActionBlocked {
		t.Fatalf("Expected a single blocked event, got %v", events)
	}
	if p := events[0].Payload.(*event.BlockedPayload); p.Reason != event.BlockedEmpty {
		t.Errorf("Expected reason empty, got %s", p.Reason)
	}
}

// A break never overfills the place below: 1 ten + 11 ones cannot break
// because only 9 of the 10 new ones would fit under the cap of 20
func TestBreakRequiresRoomForTen(t *testing.T) {
	env, _, queue := newTestEnv(t)
	tiers := NewTiers()
	l := New(Regroup, tiers, env)

	l.Apply(Add(tier.Tens))
	applyN(l, Add(tier.Ones), 11)
	queue.Consume()

	if l.Apply(Break(tier.Tens)) {
		t.Fatal("Expected break to be refused with 11 ones and capacity 20")
	}
	if tiers.Tens.Len() != 1 || tiers.Ones.Len() != 11 {
		t.Errorf("Expected refused break to leave 1 ten and 11 ones, got %d and %d", tiers.Tens.Len(), tiers.Ones.Len())
	}
	events := queue.Consume()
	if len(events) != 1 || events[0].Payload.(*event.BlockedPayload).Reason != event.BlockedNoRoom {
		t.Errorf("Expected a single no-room record, got %v", events)
	}
	for _, id := range []ID{Regroup, ThreeDigit} {
		if !strings.Contains(Lookup(id).Help, "room for 10") {
			t.Errorf("Expected level %d help to mention the room-for-10 limit", id)
		}
	}

	l.Apply(Remove(tier.Ones))
	if !l.Apply(Break(tier.Tens)) {
		t.Error("Expected break to start with exactly 10 slots of room")
	}
}

func TestBreakLocksInvolvedTiersOnly(t *testing.T) {
	env, clock, _ := newTestEnv(t)
	tiers := NewTiers()
	l := New(ThreeDigit, tiers, env)

	l.Apply(Add(tier.Hundreds))
	applyN(l, Add(tier.Tens), 2)
	applyN(l, Add(tier.Ones), 3)

	if !l.Apply(Break(tier.Tens)) {
		t.Fatal("Expected ten->ones break to start")
	}

	if l.Apply(Add(tier.Ones)) {
		t.Error("Expected adding to the destination tier to be blocked while breaking")
	}
	if l.Apply(Remove(tier.Tens)) {
		t.Error("Expected removing from the source tier to be blocked while breaking")
	}
	if !l.Apply(Add(tier.Hundreds)) {
		t.Error("Expected unrelated hundreds tier to stay enabled")
	}
	if l.Apply(Break(tier.Hundreds)) {
		t.Error("Expected hundred break to be excluded by the shared breaker")
	}

	clock.Advance(600 * time.Millisecond)
	l.Update()

	if got, want := l.Total(), 200+20+3; got != want {
		t.Errorf("Expected total %d after break, got %d", want, got)
	}
	if tiers.Tens.Len() != 1 || tiers.Ones.Len() != 13 {
		t.Errorf("Expected 1 ten and 13 ones, got %d and %d", tiers.Tens.Len(), tiers.Ones.Len())
	}
}

func TestBreakHundredIntoTens(t *testing.T) {
	env, clock, queue := newTestEnv(t)
	tiers := NewTiers()
	l := New(ThreeDigit, tiers, env)

	applyN(l, Add(tier.Hundreds), 2)
	applyN(l, Add(tier.Tens), 3)
	applyN(l, Add(tier.Ones), 4)
	before := l.Total()

	l.Apply(Break(tier.Hundreds))
	clock.Advance(600 * time.Millisecond)
	l.Update()

	if l.Total() != before {
		t.Errorf("Expected total %d to be conserved, got %d", before, l.Total())
	}
	if tiers.Hundreds.Len() != 1 || tiers.Tens.Len() != 13 {
		t.Errorf("Expected 1 hundred and 13 tens, got %d and %d", tiers.Hundreds.Len(), tiers.Tens.Len())
	}
	if got := countEvents(queue, event.EventBreakFinished); got != 1 {
		t.Errorf("Expected 1 finished event, got %d", got)
	}
}

func TestResetCancelsBreak(t *testing.T) {
	env, clock, queue := newTestEnv(t)
	tiers := NewTiers()
	l := New(Regroup, tiers, env)

	applyN(l, Add(tier.Tens), 2)
	l.Apply(Break(tier.Tens))
	l.Apply(Reset())

	if l.Breaker().Busy() {
		t.Error("Expected reset to cancel the break")
	}

	clock.Advance(time.Second)
	if l.Update() {
		t.Error("Expected no completion after cancel")
	}
	if l.Total() != 0 {
		t.Errorf("Expected total 0 after reset, got %d", l.Total())
	}
	if got := countEvents(queue, event.EventBreakCancelled); got != 1 {
		t.Errorf("Expected 1 cancelled event, got %d", got)
	}
}

func TestBreakerProgressAndAfterglow(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := NewBreaker(0)
	if b.Delay() != 600*time.Millisecond {
		t.Fatalf("Expected default delay 600ms, got %v", b.Delay())
	}

	src := tier.New(tier.Tens, 9)
	dst := tier.New(tier.Ones, 20)
	src.Add()

	if ok, _ := b.Start(Transition{Source: src, Dest: dst}, start); !ok {
		t.Fatal("Expected start")
	}
	if p := b.Progress(start.Add(300 * time.Millisecond)); p < 0.49 || p > 0.51 {
		t.Errorf("Expected progress ~0.5, got %f", p)
	}
	if p := b.Progress(start.Add(2 * time.Second)); p != 1 {
		t.Errorf("Expected progress clamped to 1, got %f", p)
	}

	done := start.Add(600 * time.Millisecond)
	if _, ok := b.Update(done); !ok {
		t.Fatal("Expected completion")
	}
	if k, ok := b.Afterglow(done.Add(100 * time.Millisecond)); !ok || k != tier.Ones {
		t.Errorf("Expected ones afterglow, got %s %v", k, ok)
	}
	if _, ok := b.Afterglow(done.Add(time.Second)); ok {
		t.Error("Expected afterglow to expire")
	}
}

func TestSetDelayDoesNotMoveRunningDeadline(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := NewBreaker(600 * time.Millisecond)
	src := tier.New(tier.Tens, 9)
	dst := tier.New(tier.Ones, 20)
	src.Add()

	b.Start(Transition{Source: src, Dest: dst}, start)
	b.SetDelay(10 * time.Second)

	if p := b.Progress(start.Add(300 * time.Millisecond)); p < 0.49 || p > 0.51 {
		t.Errorf("Expected progress ~0.5 against the original delay, got %f", p)
	}
	if _, ok := b.Update(start.Add(600 * time.Millisecond)); !ok {
		t.Fatal("Expected completion at the original 600ms deadline")
	}
	if src.Len() != 0 || dst.Len() != 10 {
		t.Errorf("Expected 0 tens and 10 ones, got %d and %d", src.Len(), dst.Len())
	}
	if b.Delay() != 10*time.Second {
		t.Errorf("Expected new delay 10s for later breaks, got %v", b.Delay())
	}
}

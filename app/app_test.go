package app

import (
	"testing"
	"time"

	"github.com/lixenwraith/regroup/engine"
	"github.com/lixenwraith/regroup/event"
	"github.com/lixenwraith/regroup/level"
	"github.com/lixenwraith/regroup/tier"
)

func newTestApp(t *testing.T, start level.ID) (*App, *engine.MockTimeProvider, *event.Queue) {
	t.Helper()
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	queue := event.NewQueue()
	a := New(queue, clock, Options{StartLevel: start, BreakDelay: 600 * time.Millisecond, Locale: "en"})
	return a, clock, queue
}

func TestSelectLevelResetsAllTiers(t *testing.T) {
	a, _, _ := newTestApp(t, level.ThreeDigit)

	for i := 0; i < 2; i++ {
		a.Dispatch(level.Add(tier.Hundreds))
	}
	for i := 0; i < 3; i++ {
		a.Dispatch(level.Add(tier.Tens))
	}
	for i := 0; i < 4; i++ {
		a.Dispatch(level.Add(tier.Ones))
	}
	if a.Level().Total() != 234 {
		t.Fatalf("Expected 234 before switching, got %d", a.Level().Total())
	}

	a.SelectLevel(level.Counting)

	tiers := a.Tiers()
	if tiers.Items.Len() != 0 {
		t.Errorf("Expected 0 items, got %d", tiers.Items.Len())
	}
	for _, tr := range []*tier.Tier{tiers.Hundreds, tiers.Tens, tiers.Ones} {
		if tr.Len() != 0 {
			t.Errorf("Expected empty %s tier, got %d", tr.Kind(), tr.Len())
		}
	}
	if a.LevelID() != level.Counting {
		t.Errorf("Expected level 1 active, got %d", a.LevelID())
	}
}

func TestSelectLevelResetsUnusedTiers(t *testing.T) {
	a, _, _ := newTestApp(t, level.Counting)
	a.Dispatch(level.Add(tier.Ones))

	// Number line does not use items, but switching must still empty them
	a.SelectLevel(level.NumberLine)
	if a.Tiers().Items.Len() != 0 {
		t.Errorf("Expected items emptied by level change, got %d", a.Tiers().Items.Len())
	}
}

func TestSelectLevelDropsStaleBreak(t *testing.T) {
	a, clock, _ := newTestApp(t, level.Regroup)

	a.Dispatch(level.Add(tier.Tens))
	if !a.Dispatch(level.Break(tier.Tens)) {
		t.Fatal("Expected break to start")
	}

	a.SelectLevel(level.Regroup)
	a.Dispatch(level.Add(tier.Ones))

	clock.Advance(time.Second)
	if a.Update() {
		t.Error("Expected stale break not to complete on the new level instance")
	}
	if a.Tiers().Ones.Len() != 1 {
		t.Errorf("Expected ones untouched by stale completion, got %d", a.Tiers().Ones.Len())
	}
	if a.Level().Breaker().Busy() {
		t.Error("Expected fresh level instance to start idle")
	}
}

func TestSelectLevelRestartsNumberLine(t *testing.T) {
	a, _, _ := newTestApp(t, level.NumberLine)
	a.Dispatch(level.Move(5))
	if a.Level().Total() != 15 {
		t.Fatalf("Expected 15, got %d", a.Level().Total())
	}

	a.SelectLevel(level.NumberLine)
	if a.Level().Total() != 10 {
		t.Errorf("Expected position back at 10, got %d", a.Level().Total())
	}
}

func TestSelectLevelCapacitiesFollowLevel(t *testing.T) {
	a, _, _ := newTestApp(t, level.Regroup)
	for i := 0; i < 25; i++ {
		a.Dispatch(level.Add(tier.Ones))
	}
	if got := a.Tiers().Ones.Len(); got != 20 {
		t.Errorf("Expected 20 ones on regrouping level, got %d", got)
	}

	a.SelectLevel(level.PlaceValue)
	for i := 0; i < 25; i++ {
		a.Dispatch(level.Add(tier.Ones))
	}
	if got := a.Tiers().Ones.Len(); got != 9 {
		t.Errorf("Expected 9 ones on place value level, got %d", got)
	}
}

func TestToggleShowWork(t *testing.T) {
	a, _, queue := newTestApp(t, level.PlaceValue)
	a.Dispatch(level.Add(tier.Tens))
	queue.Consume()

	if _, ok := a.Work(); ok {
		t.Error("Expected no work expression while show-work is off")
	}

	a.ToggleShowWork()
	work, ok := a.Work()
	if !ok || work != "10 + 0 = 10" {
		t.Errorf("Expected %q, got %q (%v)", "10 + 0 = 10", work, ok)
	}
	if a.Level().Total() != 10 {
		t.Errorf("Expected toggle to leave tiers untouched, total %d", a.Level().Total())
	}

	events := queue.Consume()
	if len(events) != 1 || events[0].Type != event.EventShowWorkToggled {
		t.Fatalf("Expected one ShowWorkToggled event, got %v", events)
	}
	if !events[0].Payload.(*event.ShowWorkPayload).Enabled {
		t.Error("Expected payload to report enabled")
	}

	a.ToggleShowWork()
	if a.ShowWork() {
		t.Error("Expected second toggle to turn show-work off")
	}
}

func TestSelectLevelEmitsEvent(t *testing.T) {
	a, _, queue := newTestApp(t, level.Counting)
	generation := a.Generation()

	a.SelectLevel(level.Regroup)

	events := queue.Consume()
	if len(events) != 1 || events[0].Type != event.EventLevelSelected {
		t.Fatalf("Expected one LevelSelected event, got %v", events)
	}
	p := events[0].Payload.(*event.LevelPayload)
	if p.From != 1 || p.To != 4 {
		t.Errorf("Expected 1 -> 4, got %d -> %d", p.From, p.To)
	}
	if a.Generation() == generation {
		t.Error("Expected generation to change on level selection")
	}
}

func TestSetBreakDelayAppliesToActiveLevel(t *testing.T) {
	a, clock, _ := newTestApp(t, level.Regroup)
	a.SetBreakDelay(100 * time.Millisecond)

	a.Dispatch(level.Add(tier.Tens))
	a.Dispatch(level.Break(tier.Tens))
	clock.Advance(100 * time.Millisecond)

	if !a.Update() {
		t.Error("Expected break to complete after the shortened delay")
	}
}

func TestSetBreakDelayKeepsRunningBreakTiming(t *testing.T) {
	a, clock, _ := newTestApp(t, level.Regroup)

	a.Dispatch(level.Add(tier.Tens))
	a.Dispatch(level.Break(tier.Tens))
	a.SetBreakDelay(10 * time.Second)
	clock.Advance(700 * time.Millisecond)

	if !a.Update() {
		t.Fatal("Expected the running break to complete on its original deadline")
	}
	tiers := a.Tiers()
	if tiers.Tens.Len() != 0 || tiers.Ones.Len() != 10 {
		t.Errorf("Expected 0 tens and 10 ones, got %d and %d", tiers.Tens.Len(), tiers.Ones.Len())
	}

	// The new delay applies to the next break
	a.Dispatch(level.Remove(tier.Ones))
	a.Dispatch(level.Add(tier.Tens))
	a.Dispatch(level.Break(tier.Tens))
	clock.Advance(time.Second)
	if a.Update() {
		t.Error("Expected the next break to wait for the new 10s delay")
	}
}

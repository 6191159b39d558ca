package control

import (
	"testing"
	"time"

	"github.com/lixenwraith/regroup/engine"
	"github.com/lixenwraith/regroup/level"
	"github.com/lixenwraith/regroup/tier"
)

func TestButtonKeysAreUniquePerLevel(t *testing.T) {
	global := make(map[rune]bool)
	for _, b := range Global() {
		if global[b.Key] {
			t.Errorf("Duplicate global key %q", b.Key)
		}
		global[b.Key] = true
	}

	for _, info := range level.Catalog() {
		seen := make(map[rune]bool)
		for _, b := range Buttons(info.ID) {
			if seen[b.Key] {
				t.Errorf("Level %d: duplicate key %q", info.ID, b.Key)
			}
			if global[b.Key] {
				t.Errorf("Level %d: key %q shadows a global binding", info.ID, b.Key)
			}
			seen[b.Key] = true
		}
	}
}

func TestLookup(t *testing.T) {
	b, ok := Lookup(level.Regroup, 'b')
	if !ok || b.Command.Action.Kind != level.ActionBreak || b.Command.Action.Tier != tier.Tens {
		t.Errorf("Expected break-ten binding, got %+v", b)
	}

	b, ok = Lookup(level.Counting, '5')
	if !ok || b.Command.Kind != CmdSelectLevel || b.Command.Level != level.ThreeDigit {
		t.Errorf("Expected select level 5, got %+v", b)
	}

	if _, ok := Lookup(level.PlaceValue, 'b'); ok {
		t.Error("Expected no break binding on the place value level")
	}
}

func TestEnabledReflectsBreakAvailability(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	lv := level.New(level.Regroup, level.NewTiers(), level.Env{Clock: clock})
	breakTen, _ := Lookup(level.Regroup, 'b')

	if Enabled(breakTen, lv) {
		t.Error("Expected break disabled with no tens")
	}

	lv.Apply(level.Add(tier.Tens))
	if !Enabled(breakTen, lv) {
		t.Error("Expected break enabled with one ten")
	}

	lv.Apply(level.Break(tier.Tens))
	if Enabled(breakTen, lv) {
		t.Error("Expected break disabled while breaking")
	}

	addTen, _ := Lookup(level.Regroup, 't')
	if !Enabled(addTen, lv) {
		t.Error("Expected non-break buttons to stay enabled")
	}
}

package tier

import "testing"

func TestTierAddSaturatesAtCapacity(t *testing.T) {
	tr := New(Tens, 9)

	for i := 0; i < 15; i++ {
		tr.Add()
	}

	if tr.Len() != 9 {
		t.Errorf("Expected length to saturate at 9, got %d", tr.Len())
	}
	if tr.Add() {
		t.Error("Expected Add on a full tier to report no change")
	}
	if tr.Value() != 90 {
		t.Errorf("Expected value 90, got %d", tr.Value())
	}
}

func TestTierRemoveSaturatesAtZero(t *testing.T) {
	tr := New(Ones, 20)
	tr.Add()
	tr.Add()

	for i := 0; i < 5; i++ {
		tr.Remove()
	}

	if tr.Len() != 0 {
		t.Errorf("Expected length 0, got %d", tr.Len())
	}
	if tr.Remove() {
		t.Error("Expected Remove on empty tier to report no change")
	}
}

func TestTierRemoveToken(t *testing.T) {
	tr := New(Ones, 20)
	for i := 0; i < 4; i++ {
		tr.Add()
	}
	toks := tr.Collection().Tokens()

	if !tr.RemoveToken(toks[1].ID) {
		t.Fatal("Expected RemoveToken to report a change")
	}
	if tr.Len() != 3 {
		t.Errorf("Expected 3 tokens, got %d", tr.Len())
	}
	if tr.RemoveToken(toks[1].ID) {
		t.Error("Expected second removal of the same ID to be a no-op")
	}
}

func TestTierFillIsAllOrNothing(t *testing.T) {
	tr := New(Ones, 20)
	for i := 0; i < 12; i++ {
		tr.Add()
	}

	if tr.Fill(10) {
		t.Error("Expected Fill(10) to refuse with only 8 slots of room")
	}
	if tr.Len() != 12 {
		t.Errorf("Expected refused Fill to leave length at 12, got %d", tr.Len())
	}

	tr.Remove()
	tr.Remove()
	if !tr.Fill(10) {
		t.Fatal("Expected Fill(10) to succeed with exactly 10 slots")
	}
	if tr.Len() != 20 || !tr.Full() {
		t.Errorf("Expected full tier of 20, got %d", tr.Len())
	}
}

func TestTierResetAndCapacity(t *testing.T) {
	tr := New(Hundreds, 9)
	tr.Add()

	if tr.SetCapacity(20) {
		t.Error("Expected SetCapacity on a non-empty tier to be refused")
	}

	tr.Reset()
	if !tr.Empty() {
		t.Fatalf("Expected empty tier after Reset, got %d", tr.Len())
	}
	if !tr.SetCapacity(20) || tr.Capacity() != 20 {
		t.Errorf("Expected capacity 20 after SetCapacity, got %d", tr.Capacity())
	}
	if New(Ones, 0).Capacity() != 1 {
		t.Error("Expected non-positive capacity to be raised to 1")
	}
}

func TestKindDenominationAndLower(t *testing.T) {
	cases := []struct {
		kind  Kind
		denom int
		lower Kind
		ok    bool
	}{
		{Ones, 1, Ones, false},
		{Tens, 10, Ones, true},
		{Hundreds, 100, Tens, true},
	}

	for _, c := range cases {
		if got := c.kind.Denomination(); got != c.denom {
			t.Errorf("%s: expected denomination %d, got %d", c.kind, c.denom, got)
		}
		lower, ok := c.kind.Lower()
		if ok != c.ok || lower != c.lower {
			t.Errorf("%s: expected lower (%s, %v), got (%s, %v)", c.kind, c.lower, c.ok, lower, ok)
		}
	}
}

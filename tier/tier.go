// Package tier implements place-value tier controllers: a token collection
// bounded by a capacity and weighted by a denomination.
package tier

import (
	"github.com/lixenwraith/regroup/constant"
	"github.com/lixenwraith/regroup/token"
)

// Kind identifies a place-value tier
type Kind uint8

const (
	Ones Kind = iota
	Tens
	Hundreds
)

// Denomination returns the value of one token of this kind
func (k Kind) Denomination() int {
	switch k {
	case Tens:
		return constant.DenominationTens
	case Hundreds:
		return constant.DenominationHundreds
	default:
		return constant.DenominationOnes
	}
}

// Lower returns the tier one place below, false for ones
func (k Kind) Lower() (Kind, bool) {
	switch k {
	case Hundreds:
		return Tens, true
	case Tens:
		return Ones, true
	default:
		return Ones, false
	}
}

func (k Kind) String() string {
	switch k {
	case Tens:
		return "tens"
	case Hundreds:
		return "hundreds"
	default:
		return "ones"
	}
}

// Tier owns one token collection. All operations are total: capacity and
// emptiness are saturating boundaries, reported through the bool result
type Tier struct {
	kind       Kind
	capacity   int
	collection token.Collection
}

// New creates an empty tier; capacity below 1 is raised to 1
func New(kind Kind, capacity int) *Tier {
	if capacity < 1 {
		capacity = 1
	}
	return &Tier{kind: kind, capacity: capacity}
}

func (t *Tier) Kind() Kind                   { return t.kind }
func (t *Tier) Capacity() int                { return t.capacity }
func (t *Tier) Len() int                     { return t.collection.Len() }
func (t *Tier) Collection() token.Collection { return t.collection }
func (t *Tier) Value() int                   { return t.collection.Len() * t.kind.Denomination() }
func (t *Tier) Empty() bool                  { return t.collection.Len() == 0 }
func (t *Tier) Full() bool                   { return t.collection.Len() >= t.capacity }
func (t *Tier) Room() int                    { return t.capacity - t.collection.Len() }

// Add appends one token unless the tier is full
func (t *Tier) Add() bool {
	if t.Full() {
		return false
	}
	t.collection = t.collection.Add()
	return true
}

// Remove drops the last token unless the tier is empty
func (t *Tier) Remove() bool {
	if t.Empty() {
		return false
	}
	t.collection = t.collection.RemoveLast()
	return true
}

// RemoveToken drops the token with the given ID
func (t *Tier) RemoveToken(id token.ID) bool {
	before := t.collection.Len()
	t.collection = t.collection.Remove(id)
	return t.collection.Len() != before
}

// Fill appends n tokens if all of them fit, otherwise nothing
func (t *Tier) Fill(n int) bool {
	if n <= 0 || n > t.Room() {
		return false
	}
	t.collection = t.collection.AddN(n)
	return true
}

// Reset empties the tier unconditionally
func (t *Tier) Reset() {
	t.collection = token.Collection{}
}

// SetCapacity changes the bound of an empty tier; non-empty tiers keep theirs
// so the length invariant cannot be broken retroactively
func (t *Tier) SetCapacity(capacity int) bool {
	if !t.Empty() || capacity < 1 {
		return false
	}
	t.capacity = capacity
	return true
}

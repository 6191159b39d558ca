package constant

import "time"

// Denominations of the place-value tiers
const (
	DenominationOnes     = 1
	DenominationTens     = 10
	DenominationHundreds = 100
)

// Tier capacities
const (
	// CapacityBasic bounds hundreds, and tens/ones in the place value level
	CapacityBasic = 9

	// CapacityRegroup bounds tiers that receive broken-down tokens
	CapacityRegroup = 20

	// CapacityCounting bounds the flat cookie counter of level 1
	CapacityCounting = 20
)

// Break Transition
const (
	// BreakDelay is the visual pause between triggering a break and its completion
	BreakDelay = 600 * time.Millisecond

	// BreakFanOut is the number of lower-tier tokens produced by one break
	BreakFanOut = 10

	// BreakDelayMin and BreakDelayMax bound the configurable delay
	BreakDelayMin = 50 * time.Millisecond
	BreakDelayMax = 10 * time.Second

	// BreakAfterglow keeps freshly produced tokens highlighted after completion
	BreakAfterglow = 400 * time.Millisecond
)

// Number Line
const (
	NumberLineMin   = 0
	NumberLineMax   = 20
	NumberLineStart = 10
	NumberLineJump  = 5
)

// Levels
const (
	LevelFirst = 1
	LevelLast  = 5
)

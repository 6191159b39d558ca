// Package level implements the five teaching levels and the break transition.
//
// A level composes zero to three tiers and owns its level-local state: the
// number line position of level 2 and the single Breaker of levels 4 and 5.
// Levels never store the composite value; Total is recomputed from tier
// lengths on every call.
//
// All operations are total. Saturated boundaries, empty tiers and a break in
// flight turn actions into silent no-ops. Each one is recorded as an
// EventActionBlocked for the debug log; the front end shows the matching
// buttons disabled instead of reporting anything.
package level

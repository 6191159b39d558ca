package event

import "github.com/lixenwraith/regroup/tier"

// LevelPayload identifies the level before and after a change
type LevelPayload struct {
	From int
	To   int
}

// ShowWorkPayload carries the new show-work state
type ShowWorkPayload struct {
	Enabled bool
}

// TierPayload describes a tier after a token was added or removed
type TierPayload struct {
	Level int
	Kind  tier.Kind
	Len   int
	Value int
}

// PositionPayload describes a number line move
type PositionPayload struct {
	From int
	To   int
}

// BlockedReason explains why an action was a no-op
type BlockedReason uint8

const (
	BlockedFull BlockedReason = iota
	BlockedEmpty
	BlockedBreaking
	BlockedNoRoom
	BlockedBoundary
)

func (r BlockedReason) String() string {
	switch r {
	case BlockedFull:
		return "full"
	case BlockedEmpty:
		return "empty"
	case BlockedBreaking:
		return "breaking"
	case BlockedNoRoom:
		return "no room"
	case BlockedBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// BlockedPayload describes a guarded no-op
type BlockedPayload struct {
	Level  int
	Action string
	Reason BlockedReason
}

// BreakPayload describes a break transition
type BreakPayload struct {
	Level  int
	Source tier.Kind
	Dest   tier.Kind
}

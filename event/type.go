package event

// EventType represents the type of an observable state change
type EventType int

const (
	// EventLevelSelected signals that the active level was replaced
	// Trigger: App.SelectLevel
	// Consumer: renderer, audio, status | Payload: *LevelPayload
	EventLevelSelected EventType = iota

	// EventLevelReset signals that the active level emptied its own state
	// Trigger: reset action | Payload: *LevelPayload
	EventLevelReset

	// EventShowWorkToggled signals a flip of the show-work flag
	// Trigger: App.ToggleShowWork | Payload: *ShowWorkPayload
	EventShowWorkToggled

	// EventTokenAdded signals one token appended to a tier
	// Trigger: add action | Payload: *TierPayload
	EventTokenAdded

	// EventTokenRemoved signals one token dropped from a tier
	// Trigger: remove action, remove-by-id | Payload: *TierPayload
	EventTokenRemoved

	// EventPositionMoved signals a number line move
	// Trigger: step/jump actions | Payload: *PositionPayload
	EventPositionMoved

	// EventActionBlocked records a guarded no-op (full, empty, breaking) for
	// the debug log; it has no visible or audible effect
	// Consumer: diagnostics logger | Payload: *BlockedPayload
	EventActionBlocked

	// EventBreakStarted signals Idle -> Breaking
	// Payload: *BreakPayload
	EventBreakStarted

	// EventBreakFinished signals Breaking -> Idle with tiers updated
	// Payload: *BreakPayload
	EventBreakFinished

	// EventBreakCancelled signals a running break dropped by a level reset
	// Payload: *BreakPayload
	EventBreakCancelled

	// EventConfigReloaded signals that display settings changed on disk
	// Payload: nil
	EventConfigReloaded

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventLevelSelected:   "LevelSelected",
	EventLevelReset:      "LevelReset",
	EventShowWorkToggled: "ShowWorkToggled",
	EventTokenAdded:      "TokenAdded",
	EventTokenRemoved:    "TokenRemoved",
	EventPositionMoved:   "PositionMoved",
	EventActionBlocked:   "ActionBlocked",
	EventBreakStarted:    "BreakStarted",
	EventBreakFinished:   "BreakFinished",
	EventBreakCancelled:  "BreakCancelled",
	EventConfigReloaded:  "ConfigReloaded",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventNames[t]
}

// Event is a single notification pushed by the app and consumed by the loop
type Event struct {
	Type    EventType
	Payload any
	Frame   int64
}

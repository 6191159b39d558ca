package audio

import "github.com/lixenwraith/regroup/event"

// Handler maps app events to sound effects
type Handler struct {
	player Player
}

// NewHandler creates an event handler playing through p
func NewHandler(p Player) *Handler {
	return &Handler{player: p}
}

func (h *Handler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTokenAdded,
		event.EventTokenRemoved,
		event.EventPositionMoved,
		event.EventBreakStarted,
		event.EventBreakFinished,
		event.EventLevelSelected,
	}
}

func (h *Handler) HandleEvent(ev event.Event) {
	if s, ok := SoundFor(ev.Type); ok {
		h.player.Play(s)
	}
}

// SoundFor returns the effect that accompanies an event type
func SoundFor(t event.EventType) (SoundType, bool) {
	switch t {
	case event.EventTokenAdded, event.EventPositionMoved:
		return SoundClick, true
	case event.EventTokenRemoved:
		return SoundPop, true
	case event.EventBreakStarted:
		return SoundWhoosh, true
	case event.EventBreakFinished:
		return SoundChime, true
	case event.EventLevelSelected:
		return SoundBell, true
	}
	return 0, false
}

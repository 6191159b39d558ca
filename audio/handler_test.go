package audio

import (
	"testing"

	"github.com/lixenwraith/regroup/event"
)

type recordingPlayer struct {
	played []SoundType
}

func (r *recordingPlayer) Play(s SoundType) { r.played = append(r.played, s) }

func TestHandlerMapsEvents(t *testing.T) {
	rec := &recordingPlayer{}
	q := event.NewQueue()
	router := event.NewRouter(q)
	router.Register(NewHandler(rec))

	q.Emit(event.EventTokenAdded, nil)
	q.Emit(event.EventBreakStarted, nil)
	q.Emit(event.EventBreakFinished, nil)
	q.Emit(event.EventShowWorkToggled, nil)
	q.Emit(event.EventActionBlocked, &event.BlockedPayload{Action: "add", Reason: event.BlockedFull})
	router.DispatchAll()

	// Guarded no-ops stay silent
	want := []SoundType{SoundClick, SoundWhoosh, SoundChime}
	if len(rec.played) != len(want) {
		t.Fatalf("Expected %v, got %v", want, rec.played)
	}
	for i := range want {
		if rec.played[i] != want[i] {
			t.Errorf("Sound %d: expected %s, got %s", i, want[i], rec.played[i])
		}
	}
}

func TestSoundManagerUninitializedIsSilent(t *testing.T) {
	sm := NewSoundManager(DefaultConfig())
	sm.Play(SoundBell)

	if !sm.Muted() {
		t.Error("Expected uninitialized manager to report muted")
	}

	cfg := DefaultConfig()
	cfg.Enabled = false
	if err := NewSoundManager(cfg).Initialize(); err != ErrDisabled {
		t.Errorf("Expected ErrDisabled, got %v", err)
	}
}

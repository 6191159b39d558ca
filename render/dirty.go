package render

import "github.com/lixenwraith/regroup/event"

// DirtyTracker marks the frame stale whenever the app emits an event
type DirtyTracker struct {
	dirty bool
}

// NewDirtyTracker starts dirty so the first frame is drawn
func NewDirtyTracker() *DirtyTracker {
	return &DirtyTracker{dirty: true}
}

func (d *DirtyTracker) EventTypes() []event.EventType { return event.AllTypes() }

func (d *DirtyTracker) HandleEvent(event.Event) { d.dirty = true }

// Mark forces a redraw on the next frame
func (d *DirtyTracker) Mark() { d.dirty = true }

// Take reports and clears the dirty flag
func (d *DirtyTracker) Take() bool {
	was := d.dirty
	d.dirty = false
	return was
}

package schedule

import (
	"encoding/json"

	"github.com/rsked-radio/rcald/internal/model"
)

// EditorState is the single-owner mutable state behind one editing session:
// the source registry, the calendar events on the week grid, and the
// library/playlists blocks carried through from the loaded schedule. All
// mutation happens from one goroutine between request round trips; there is
// no locking.
type EditorState struct {
	Registry *Registry
	Events   []*model.CalendarEvent

	// opaque blocks copied from the loaded document and echoed on export
	Library   json.RawMessage
	Playlists json.RawMessage
}

func NewEditorState() *EditorState {
	return &EditorState{Registry: NewRegistry()}
}

// Flush discards all sources, announcements and events, as happens before a
// new schedule is imported over the current one.
func (st *EditorState) Flush() {
	st.Registry = NewRegistry()
	st.Events = nil
	st.Library = nil
	st.Playlists = nil
}

// AddEvent places an event on the grid.
func (st *EditorState) AddEvent(evt *model.CalendarEvent) {
	st.Events = append(st.Events, evt)
}

// EventsForDay returns the events on the given day (0=sunday), in grid
// order, not sorted.
func (st *EditorState) EventsForDay(day int) []*model.CalendarEvent {
	var out []*model.CalendarEvent
	for _, e := range st.Events {
		if e.Day == day {
			out = append(out, e)
		}
	}
	return out
}

// PeerEvents finds every event sharing evt's title and time-of-day window
// across all days, including evt itself. The repeat-pattern editor treats
// these as one recurring usage.
func (st *EditorState) PeerEvents(evt *model.CalendarEvent) []*model.CalendarEvent {
	var out []*model.CalendarEvent
	for _, e := range st.Events {
		if e.Title == evt.Title && e.Start == evt.Start && e.End == evt.End {
			out = append(out, e)
		}
	}
	return out
}

// EventsTitled counts the events currently referencing the named source,
// so a caller can confirm before a cascade delete.
func (st *EditorState) EventsTitled(name string) int {
	n := 0
	for _, e := range st.Events {
		if e.Title == name {
			n++
		}
	}
	return n
}

// DeleteSource unregisters the named source and removes every event that
// referenced it, returning how many events were removed. No dangling slot
// references are left behind.
func (st *EditorState) DeleteSource(name string) int {
	if !st.Registry.Unregister(name) {
		return 0
	}
	kept := st.Events[:0]
	removed := 0
	for _, e := range st.Events {
		if e.Title == name {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	st.Events = kept
	return removed
}

// ResizeToDuration clamps evt's end to start + the source's declared
// duration plus one second of gap, when the source has one. Events for
// indefinite sources are left alone.
func (st *EditorState) ResizeToDuration(evt *model.CalendarEvent) {
	src := st.Registry.Lookup(evt.Title)
	if src == nil || src.Duration == nil {
		return
	}
	evt.End = int(TimeOfDay(evt.Start).AddSeconds(int(*src.Duration) + 1))
}

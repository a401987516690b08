package schedule

import (
	"time"

	"github.com/rsked-radio/rcald/internal/model"
)

// ExportDocument captures the whole editor state as a schedule document:
// every registered source in its persisted form, and every day's events
// collected into slots and normalized. The version stamp is taken from now,
// so the document is always new even when nothing changed.
func (st *EditorState) ExportDocument(now time.Time) *model.ScheduleDoc {
	doc := &model.ScheduleDoc{
		Encoding:    "UTF-8",
		Schema:      "2.0",
		Version:     now.UTC().Format(time.RFC3339),
		Library:     st.Library,
		Playlists:   st.Playlists,
		Sources:     st.Registry.ExportSources(),
		Dayprograms: make(map[string][]model.Slot, len(model.DayNames)),
	}
	for day, name := range model.DayNames {
		doc.Dayprograms[name] = NormalizeDay(st.collectDay(day))
	}
	return doc
}

// collectDay maps the day's calendar events to timed slots: programs span
// [start, end), announcements collapse to their start point.
func (st *EditorState) collectDay(day int) []TimedSlot {
	var slots []TimedSlot
	for _, e := range st.Events {
		if e.Day != day {
			continue
		}
		start := TimeOfDay(e.Start)
		if st.Registry.IsAnnouncement(e.Title) {
			slots = append(slots, TimedSlot{Start: start, Finish: start, Announce: e.Title})
		} else {
			slots = append(slots, TimedSlot{
				Start:   start,
				Finish:  TimeOfDay(e.End % daySeconds),
				Program: e.Title,
			})
		}
	}
	return slots
}

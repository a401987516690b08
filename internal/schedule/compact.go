package schedule

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/rsked-radio/rcald/internal/model"
)

// Compact finds and fixes overlaps among program events on every day of the
// week. Announcements never participate. Events are mutated in place; split
// remainders are added to the state.
func (st *EditorState) Compact() {
	for day := range model.DayNames {
		var progs []*model.CalendarEvent
		for _, e := range st.EventsForDay(day) {
			if !st.Registry.IsAnnouncement(e.Title) {
				progs = append(progs, e)
			}
		}
		st.compactDay(progs)
	}
}

// compactDay resolves overlaps within one day, in start order:
//   - no overlap: both events untouched
//   - the earlier event ends at or before the later one: foreshorten the
//     earlier event to abut the later one's start
//   - the overlap is strictly inside the earlier event: split it, keeping a
//     trailing clone from the later event's end to the original end
//
// Fixups are day-local and never reorder by anything but start time.
func (st *EditorState) compactDay(events []*model.CalendarEvent) {
	sort.SliceStable(events, func(i, j int) bool { return events[i].Start < events[j].Start })

	var prev *model.CalendarEvent
	fin := 0
	for j := 0; j < len(events); j++ {
		cur := events[j]
		if cur.Start < fin {
			log.Debug().Str("event", cur.Title).Str("overlaps", prev.Title).
				Msg("compacting overlap")
			if fin <= cur.End {
				prev.End = cur.Start
			} else {
				tail := &model.CalendarEvent{
					Day:   prev.Day,
					Start: cur.End,
					End:   prev.End,
					Title: prev.Title,
					Color: prev.Color,
				}
				st.AddEvent(tail)
				prev.End = cur.Start
				events = append(events, nil)
				copy(events[j+2:], events[j+1:])
				events[j+1] = tail
			}
		}
		fin = cur.End
		prev = cur
	}
}

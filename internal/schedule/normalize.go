package schedule

import (
	"fmt"
	"sort"

	"github.com/rsked-radio/rcald/internal/model"
)

// TimedSlot is a day-program slot augmented with the derived end of its
// span. Finish is a helper only: it is stripped before anything is
// persisted. A Finish of Midnight means the span runs to the end of the day.
// Exactly one of Program and Announce is set; announcements are points, so
// their Finish equals their Start.
type TimedSlot struct {
	Start    TimeOfDay
	Finish   TimeOfDay
	Program  string
	Announce string
}

// NormalizeDay turns an unordered, possibly gapped slot list for one day
// into the canonical form: ordered by start, covering the full day from
// 00:00:00 back around to 00:00:00 with synthetic OFF slots filling the
// head, any interior gaps between programs, and the tail. Announcements are
// transparent to gap filling. Consecutive identical program names are left
// as separate slots; downstream consumers rely on the boundaries.
func NormalizeDay(slots []TimedSlot) []model.Slot {
	if len(slots) == 0 {
		// an entirely quiet day
		return []model.Slot{{Start: Midnight.String(), Program: model.OffSource}}
	}

	s := make([]TimedSlot, len(slots))
	copy(s, slots)
	sort.SliceStable(s, func(i, j int) bool { return s[i].Start < s[j].Start })

	out := make([]TimedSlot, 0, len(s)+2)
	var fin TimeOfDay
	idx := 0
	if s[0].Start != Midnight {
		off := TimedSlot{Start: Midnight, Finish: s[0].Start, Program: model.OffSource}
		out = append(out, off)
		fin = off.Finish
	} else {
		out = append(out, s[0])
		fin = s[0].Finish
		idx = 1
	}

	for ; idx < len(s); idx++ {
		sl := s[idx]
		if sl.Program != "" {
			if sl.Start != fin {
				out = append(out, TimedSlot{Start: fin, Finish: sl.Start, Program: model.OffSource})
			}
			fin = sl.Finish
		}
		out = append(out, sl)
	}

	// the tail follows the last program span, not the last element; a
	// trailing announcement after a span that reaches midnight needs no OFF
	if fin != Midnight {
		out = append(out, TimedSlot{Start: fin, Finish: Midnight, Program: model.OffSource})
	}

	// drop the finish helper; only start and program/announce are schema
	res := make([]model.Slot, 0, len(out))
	for _, sl := range out {
		res = append(res, model.Slot{
			Start:    sl.Start.String(),
			Program:  sl.Program,
			Announce: sl.Announce,
		})
	}
	return res
}

// WithFinishes parses a persisted day-program slot list back into timed
// slots, deriving each program span's finish from the start of the next
// program slot (announcements do not end a span) and letting the last
// program run to midnight.
func WithFinishes(slots []model.Slot) ([]TimedSlot, error) {
	out := make([]TimedSlot, 0, len(slots))
	for _, sl := range slots {
		start, err := ParseTimeOfDay(sl.Start)
		if err != nil {
			return nil, fmt.Errorf("slot %q: %w", sl.Start, err)
		}
		out = append(out, TimedSlot{
			Start:    start,
			Finish:   start,
			Program:  sl.Program,
			Announce: sl.Announce,
		})
	}
	// walk backwards so each program sees the start of the program after it
	next := Midnight
	for i := len(out) - 1; i >= 0; i-- {
		if out[i].Program == "" {
			continue
		}
		out[i].Finish = next
		next = out[i].Start
	}
	return out, nil
}

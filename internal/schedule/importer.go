package schedule

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/rsked-radio/rcald/internal/model"
)

// announcePadSecs extends imported announcement points so they stay visible
// and clickable on the calendar.
const announcePadSecs = 20 * 60

// ImportDocument replaces the editor state with the contents of a loaded
// schedule document. An unrecognized source medium or an unparseable slot
// start is fatal and leaves the state untouched; slots referencing undefined
// sources are logged and skipped.
func (st *EditorState) ImportDocument(doc *model.ScheduleDoc) error {
	reg := NewRegistry()
	for name, def := range doc.Sources {
		src, err := importSource(name, def)
		if err != nil {
			return err
		}
		if err := reg.Register(src); err != nil {
			return err
		}
	}

	days := make([][]daySlot, len(model.DayNames))
	for day, name := range model.DayNames {
		parsed, err := parseDay(name, doc.Dayprograms[name])
		if err != nil {
			return err
		}
		days[day] = parsed
	}

	st.Flush()
	st.Registry = reg
	st.Library = doc.Library
	st.Playlists = doc.Playlists

	for day := range model.DayNames {
		st.importDay(day, days[day])
	}
	return nil
}

// importSource builds a Source or Announcement from its persisted form,
// applying the type defaults for any absent optional fields.
func importSource(name string, def model.SourceDef) (*model.Source, error) {
	medium, err := model.ParseMedium(def.Medium)
	if err != nil {
		return nil, fmt.Errorf("source %q: %w", name, err)
	}
	src, err := model.NewSource(name, medium, def.Encoding, def.Location)
	if err != nil {
		return nil, err
	}
	if def.Alternate != "" {
		src.Alternate = def.Alternate
	}
	if def.Dynamic != nil {
		src.Dynamic = *def.Dynamic
	}
	if def.Repeat != nil {
		src.Repeat = *def.Repeat
	}
	if def.Announcement != nil && *def.Announcement {
		src.Announcement = true
		if loc, ok := def.Location.(string); ok {
			src.AnnLocation = loc
		}
	}
	if def.Text != nil {
		src.Text = *def.Text
	}
	src.Duration = def.Duration
	return src, nil
}

// daySlot is a day-program slot with its start already parsed.
type daySlot struct {
	start    TimeOfDay
	program  string
	announce string
}

// parseDay checks every slot start in one day's program. A time that does
// not parse rejects the whole document; a schedule with a bad slot must
// never reach the player.
func parseDay(name string, slots []model.Slot) ([]daySlot, error) {
	out := make([]daySlot, 0, len(slots))
	for _, sl := range slots {
		start, err := ParseTimeOfDay(sl.Start)
		if err != nil {
			return nil, fmt.Errorf("%s slot: %w", name, err)
		}
		out = append(out, daySlot{start: start, program: sl.Program, announce: sl.Announce})
	}
	return out, nil
}

// importDay walks one day's slot list in file order, emitting a calendar
// event for each program span. A program runs from its own start to the
// start of the next program slot; OFF spans are implicit and produce no
// event. Announcements are point events padded for display and do not
// advance the running program.
func (st *EditorState) importDay(day int, slots []daySlot) {
	current := ""
	var started TimeOfDay
	haveCurrent := false

	for _, sl := range slots {
		switch {
		case sl.program != "":
			if haveCurrent && current != model.OffSource {
				st.emitProgram(day, current, started, sl.start)
			}
			current = sl.program
			started = sl.start
			haveCurrent = true
		case sl.announce != "":
			ann := st.Registry.Lookup(sl.announce)
			if ann == nil || !ann.Announcement {
				log.Warn().Str("announce", sl.announce).
					Msg("skipping undefined announcement")
				continue
			}
			st.AddEvent(&model.CalendarEvent{
				Day:   day,
				Start: int(sl.start),
				End:   int(sl.start.AddSeconds(announcePadSecs)),
				Title: sl.announce,
				Color: ann.Color,
			})
		}
	}
	// a final program that runs through midnight has no closing slot
	if haveCurrent && current != model.OffSource {
		st.emitProgram(day, current, started, Midnight)
	}
}

func (st *EditorState) emitProgram(day int, name string, start, end TimeOfDay) {
	src := st.Registry.Lookup(name)
	if src == nil {
		log.Warn().Str("program", name).Msg("skipping undefined source")
		return
	}
	endSecs := int(end)
	if end == Midnight {
		endSecs = daySeconds
	}
	st.AddEvent(&model.CalendarEvent{
		Day:   day,
		Start: int(start),
		End:   endSecs,
		Title: name,
		Color: src.Color,
	})
}

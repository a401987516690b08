package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock instant within one symbolic day, in seconds
// since 00:00:00. The week template carries no dates or timezones.
// Midnight (0) doubles as the wraparound end of day in slot finish fields,
// matching the rsked schema where a day "ends" at "00:00:00".
type TimeOfDay int

// Midnight is both the start of a day and the wraparound end marker.
const Midnight TimeOfDay = 0

const daySeconds = 24 * 60 * 60

// ParseTimeOfDay accepts "HH:MM:SS" or the shorthand "HH:MM" found in older
// schedule files.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("bad time of day %q", s)
	}
	var hms [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("bad time of day %q", s)
		}
		hms[i] = n
	}
	if hms[0] > 23 || hms[1] > 59 || hms[2] > 59 {
		return 0, fmt.Errorf("bad time of day %q", s)
	}
	return TimeOfDay(hms[2] + 60*(hms[1]+60*hms[0])), nil
}

// String renders the canonical "HH:MM:SS" form used in schedule documents.
func (t TimeOfDay) String() string {
	n := int(t) % daySeconds
	if n < 0 {
		n += daySeconds
	}
	return fmt.Sprintf("%02d:%02d:%02d", n/3600, (n/60)%60, n%60)
}

// AddSeconds returns the time secs later, clamped to the end of the day so
// display padding never creeps over the midnight boundary.
func (t TimeOfDay) AddSeconds(secs int) TimeOfDay {
	n := int(t) + secs
	if n >= daySeconds {
		n = daySeconds - 1
	}
	return TimeOfDay(n)
}

package model

// CalendarEvent is the editing-time representation of one scheduled span:
// a program interval or a padded announcement point on one day of the
// symbolic week. Day is 0=sunday .. 6=saturday; Start and End are seconds
// into the day.
type CalendarEvent struct {
	Day   int    `json:"day"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Title string `json:"title"`
	Color string `json:"color"`
}

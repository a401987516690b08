package model

import "encoding/json"

// DayNames are the canonical day keys used in schedule documents,
// index 0 = sunday.
var DayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// SourceDef is the persisted form of a source in a schedule document.
// Location is heterogeneous: radio frequencies are JSON numbers, everything
// else is a string. Optional booleans are pointers so the importer can tell
// "absent" from "false".
type SourceDef struct {
	Encoding     string   `json:"encoding"`
	Medium       string   `json:"medium"`
	Location     any      `json:"location"`
	Repeat       *bool    `json:"repeat,omitempty"`
	Dynamic      *bool    `json:"dynamic,omitempty"`
	Alternate    string   `json:"alternate,omitempty"`
	Announcement *bool    `json:"announcement,omitempty"`
	Text         *string  `json:"text,omitempty"`
	Duration     *float64 `json:"duration,omitempty"`
}

// Slot is one entry in a day program: either a program span beginning at
// Start, or an announcement point at Start. Exactly one of Program and
// Announce is set.
type Slot struct {
	Start    string `json:"start"`
	Program  string `json:"program,omitempty"`
	Announce string `json:"announce,omitempty"`
}

// ScheduleDoc is the rsked schedule document, schema 2.0. Library and
// Playlists are carried through untouched when the loaded schedule included
// them.
type ScheduleDoc struct {
	Encoding    string               `json:"encoding"`
	Schema      string               `json:"schema"`
	Version     string               `json:"version"`
	Library     json.RawMessage      `json:"library,omitempty"`
	Playlists   json.RawMessage      `json:"playlists,omitempty"`
	Sources     map[string]SourceDef `json:"sources"`
	Dayprograms map[string][]Slot    `json:"dayprograms"`
}

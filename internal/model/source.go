package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Medium is the category of resource backing a source.
type Medium string

const (
	MediumRadio     Medium = "radio"
	MediumStream    Medium = "stream"
	MediumFile      Medium = "file"
	MediumDirectory Medium = "directory"
	MediumPlaylist  Medium = "playlist"
)

// OffSource is the sentinel program name meaning "no playback". It is never
// registered and never looked up.
const OffSource = "OFF"

// AnnouncementColor is the calendar color used for all announcements.
const AnnouncementColor = "#101010"

var (
	ErrUnknownMedium = errors.New("unknown source medium")
	ErrBadFrequency  = errors.New("invalid radio frequency")
	ErrBadLocation   = errors.New("malformed source location")
)

// ParseMedium validates a medium string from a schedule document.
func ParseMedium(s string) (Medium, error) {
	switch Medium(s) {
	case MediumRadio, MediumStream, MediumFile, MediumDirectory, MediumPlaylist:
		return Medium(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMedium, s)
}

// Color returns the default calendar color for the medium.
func (m Medium) Color() string {
	switch m {
	case MediumRadio:
		return "#0066ff"
	case MediumStream:
		return "#cc33ff"
	case MediumFile:
		return "#009900"
	case MediumPlaylist:
		return "#ff6600"
	case MediumDirectory:
		return "#996633"
	}
	return "#ffcc66"
}

// Source is a named, reusable program definition. Names starting with '%'
// are hidden: retained in the schedule but not shown in the editor.
// Which location fields are meaningful depends on Medium.
type Source struct {
	Name     string
	Medium   Medium
	Encoding string // "ogg", "mp3", "wfm", ...
	Color    string

	// location variants, exactly one combination populated per Medium
	Freq     float64 // radio
	URL      string  // stream
	Artist   string  // file, directory
	Album    string  // file, directory
	File     string  // file
	Playlist string  // playlist

	Repeat    bool
	Dynamic   bool
	Alternate string // name of a fallback source, or "OFF"
	Duration  *float64

	Announcement bool
	Text         string
	AnnLocation  string // original location string, echoed verbatim on export
}

// NewSource builds a source from a medium and its raw location value.
// Radio locations are JSON numbers (or numeric strings); all other media use
// strings. Defaults: repeat=true, dynamic=false, alternate="OFF".
func NewSource(name string, medium Medium, encoding string, location any) (*Source, error) {
	s := &Source{
		Name:      name,
		Medium:    medium,
		Encoding:  encoding,
		Color:     medium.Color(),
		Repeat:    true,
		Alternate: OffSource,
	}
	switch medium {
	case MediumRadio:
		freq, err := asFrequency(location)
		if err != nil {
			return nil, err
		}
		s.Freq = freq
	case MediumStream:
		url, ok := location.(string)
		if !ok {
			return nil, fmt.Errorf("%w: stream url for %q", ErrBadLocation, name)
		}
		s.URL = url
	case MediumFile:
		loc, _ := location.(string)
		parts := strings.Split(loc, "/")
		if len(parts) < 3 {
			// resource paths like "~/.config/rsked/resource/motd.ogg" still
			// split into at least three components; anything shorter is broken
			return nil, fmt.Errorf("%w: file path %q for %q", ErrBadLocation, loc, name)
		}
		s.Artist = parts[0]
		s.Album = parts[1]
		s.File = strings.Join(parts[2:], "/")
	case MediumDirectory:
		loc, _ := location.(string)
		parts := strings.Split(loc, "/")
		if len(parts) < 2 {
			return nil, fmt.Errorf("%w: directory path %q for %q", ErrBadLocation, loc, name)
		}
		s.Artist = parts[0]
		s.Album = strings.Join(parts[1:], "/")
	case MediumPlaylist:
		pl, ok := location.(string)
		if !ok {
			return nil, fmt.Errorf("%w: playlist name for %q", ErrBadLocation, name)
		}
		s.Playlist = pl
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMedium, medium)
	}
	return s, nil
}

func asFrequency(v any) (float64, error) {
	switch f := v.(type) {
	case float64:
		return f, nil
	case string:
		freq, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadFrequency, f)
		}
		return freq, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrBadFrequency, v)
}

// Hidden reports whether the source name is '%'-prefixed and therefore kept
// out of the editor palette.
func (s *Source) Hidden() bool {
	return strings.HasPrefix(s.Name, "%")
}

// Location returns the effective rsked location value for the source.
// Announcements echo their original location; radio sources emit the
// frequency as a number.
func (s *Source) Location() any {
	if s.Announcement {
		return s.AnnLocation
	}
	switch s.Medium {
	case MediumRadio:
		return s.Freq
	case MediumStream:
		return s.URL
	case MediumFile:
		return s.Artist + "/" + s.Album + "/" + s.File
	case MediumDirectory:
		return s.Artist + "/" + s.Album
	case MediumPlaylist:
		return s.Playlist
	}
	return nil
}

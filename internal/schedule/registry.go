package schedule

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rsked-radio/rcald/internal/model"
)

// ErrDuplicateName is returned when registering a source whose name is
// already taken by another source or announcement.
var ErrDuplicateName = errors.New("source name already registered")

// Registry holds the sources and announcements available for scheduling,
// keyed by name. Names are unique across the union of both kinds,
// case-sensitively. The sentinel "OFF" is never registered.
type Registry struct {
	sources       map[string]*model.Source
	announcements map[string]*model.Source
}

func NewRegistry() *Registry {
	return &Registry{
		sources:       make(map[string]*model.Source),
		announcements: make(map[string]*model.Source),
	}
}

// Register adds src under its name. Re-registering the same source value
// (an edit that kept the name) is allowed; any other collision fails with
// ErrDuplicateName and no side effects.
func (r *Registry) Register(src *model.Source) error {
	if existing := r.lookup(src.Name); existing != nil && existing != src {
		return fmt.Errorf("%w: %q", ErrDuplicateName, src.Name)
	}
	if src.Announcement {
		src.Color = model.AnnouncementColor
		r.announcements[src.Name] = src
	} else {
		r.sources[src.Name] = src
	}
	return nil
}

// Lookup returns the source or announcement with the given name, or nil.
func (r *Registry) Lookup(name string) *model.Source {
	return r.lookup(name)
}

func (r *Registry) lookup(name string) *model.Source {
	if s, ok := r.sources[name]; ok {
		return s
	}
	if a, ok := r.announcements[name]; ok {
		return a
	}
	return nil
}

// IsAnnouncement reports whether name refers to a registered announcement.
func (r *Registry) IsAnnouncement(name string) bool {
	_, ok := r.announcements[name]
	return ok
}

// Unregister removes the named source or announcement. It reports whether
// an entry was removed. Callers owning calendar events must deal with
// orphaned slots themselves; see EditorState.DeleteSource.
func (r *Registry) Unregister(name string) bool {
	if _, ok := r.sources[name]; ok {
		delete(r.sources, name)
		return true
	}
	if _, ok := r.announcements[name]; ok {
		delete(r.announcements, name)
		return true
	}
	return false
}

// AllNames enumerates registered names in lexicographic order, optionally
// including '%'-prefixed hidden entries. Export relies on the sorted order
// for deterministic documents.
func (r *Registry) AllNames(includeHidden bool) []string {
	names := make([]string, 0, len(r.sources)+len(r.announcements))
	for n := range r.sources {
		names = append(names, n)
	}
	for n := range r.announcements {
		names = append(names, n)
	}
	sort.Strings(names)
	if includeHidden {
		return names
	}
	vis := names[:0]
	for _, n := range names {
		if len(n) > 0 && n[0] == '%' {
			continue
		}
		vis = append(vis, n)
	}
	return vis
}

// Len returns the number of registered sources plus announcements.
func (r *Registry) Len() int {
	return len(r.sources) + len(r.announcements)
}

// ExportSources emits the persisted form of every source and announcement.
// The JSON encoder writes map keys sorted, which gives the deterministic
// ordering the schedule files have always had.
func (r *Registry) ExportSources() map[string]model.SourceDef {
	out := make(map[string]model.SourceDef, r.Len())
	for _, name := range r.AllNames(true) {
		src := r.lookup(name)
		repeat, dynamic, ann := src.Repeat, src.Dynamic, src.Announcement
		def := model.SourceDef{
			Encoding:     src.Encoding,
			Medium:       string(src.Medium),
			Location:     src.Location(),
			Repeat:       &repeat,
			Dynamic:      &dynamic,
			Alternate:    src.Alternate,
			Announcement: &ann,
			Duration:     src.Duration,
		}
		if src.Text != "" {
			text := src.Text
			def.Text = &text
		}
		out[name] = def
	}
	return out
}

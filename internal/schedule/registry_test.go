package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsked-radio/rcald/internal/model"
)

func newRadioSource(t *testing.T, name string, freq float64) *model.Source {
	t.Helper()
	src, err := model.NewSource(name, model.MediumRadio, "wfm", freq)
	require.NoError(t, err)
	return src
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()
	ksjn := newRadioSource(t, "ksjn", 99.5)
	require.NoError(t, reg.Register(ksjn))

	t.Run("duplicate name fails without side effects", func(t *testing.T) {
		err := reg.Register(newRadioSource(t, "ksjn", 88.5))
		assert.ErrorIs(t, err, ErrDuplicateName)
		assert.Equal(t, 99.5, reg.Lookup("ksjn").Freq)
	})

	t.Run("re-registering the same identity is an edit", func(t *testing.T) {
		ksjn.Freq = 99.9
		assert.NoError(t, reg.Register(ksjn))
		assert.Equal(t, 99.9, reg.Lookup("ksjn").Freq)
	})

	t.Run("announcement names share the namespace", func(t *testing.T) {
		ann, err := model.NewSource("ksjn", model.MediumFile, "ogg", "res/x/y.ogg")
		require.NoError(t, err)
		ann.Announcement = true
		assert.ErrorIs(t, reg.Register(ann), ErrDuplicateName)
	})
}

func TestRegistryLookupMisses(t *testing.T) {
	reg := NewRegistry()
	assert.Nil(t, reg.Lookup("nope"))
	assert.Nil(t, reg.Lookup(model.OffSource))
	assert.False(t, reg.Unregister("nope"))
}

func TestRegistryAllNames(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newRadioSource(t, "ksjn", 99.5)))
	require.NoError(t, reg.Register(newRadioSource(t, "cms", 90.1)))
	hidden, err := model.NewSource("%motd", model.MediumFile, "ogg", "res/motd/motd.ogg")
	require.NoError(t, err)
	hidden.Announcement = true
	require.NoError(t, reg.Register(hidden))

	assert.Equal(t, []string{"%motd", "cms", "ksjn"}, reg.AllNames(true))
	assert.Equal(t, []string{"cms", "ksjn"}, reg.AllNames(false))
}

func TestDeleteSourceCascades(t *testing.T) {
	st := NewEditorState()
	require.NoError(t, st.Registry.Register(newRadioSource(t, "ksjn", 99.5)))
	require.NoError(t, st.Registry.Register(newRadioSource(t, "cms", 90.1)))
	st.AddEvent(&model.CalendarEvent{Day: 1, Start: 3600, End: 7200, Title: "ksjn"})
	st.AddEvent(&model.CalendarEvent{Day: 3, Start: 3600, End: 7200, Title: "ksjn"})
	st.AddEvent(&model.CalendarEvent{Day: 1, Start: 7200, End: 9000, Title: "cms"})

	assert.Equal(t, 2, st.EventsTitled("ksjn"))
	removed := st.DeleteSource("ksjn")
	assert.Equal(t, 2, removed)
	assert.Nil(t, st.Registry.Lookup("ksjn"))
	// no dangling references left
	assert.Equal(t, 0, st.EventsTitled("ksjn"))
	assert.Len(t, st.Events, 1)
	assert.Equal(t, "cms", st.Events[0].Title)
}

func TestPeerEvents(t *testing.T) {
	st := NewEditorState()
	mon := &model.CalendarEvent{Day: 1, Start: 3600, End: 7200, Title: "cms"}
	wed := &model.CalendarEvent{Day: 3, Start: 3600, End: 7200, Title: "cms"}
	other := &model.CalendarEvent{Day: 1, Start: 7200, End: 9000, Title: "cms"}
	st.AddEvent(mon)
	st.AddEvent(wed)
	st.AddEvent(other)

	peers := st.PeerEvents(mon)
	assert.ElementsMatch(t, []*model.CalendarEvent{mon, wed}, peers)
}

func TestResizeToDuration(t *testing.T) {
	st := NewEditorState()
	dur := 1800.0
	src := newRadioSource(t, "capture", 91.1)
	src.Duration = &dur
	require.NoError(t, st.Registry.Register(src))
	require.NoError(t, st.Registry.Register(newRadioSource(t, "ksjn", 99.5)))

	evt := &model.CalendarEvent{Day: 0, Start: 3600, End: 3600 * 3, Title: "capture"}
	st.ResizeToDuration(evt)
	assert.Equal(t, 3600+1801, evt.End)

	// indefinite sources are left alone
	free := &model.CalendarEvent{Day: 0, Start: 3600, End: 3600 * 3, Title: "ksjn"}
	st.ResizeToDuration(free)
	assert.Equal(t, 3600*3, free.End)
}

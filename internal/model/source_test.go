package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMedium(t *testing.T) {
	for _, ok := range []string{"radio", "stream", "file", "directory", "playlist"} {
		m, err := ParseMedium(ok)
		assert.NoError(t, err)
		assert.Equal(t, Medium(ok), m)
	}
	_, err := ParseMedium("teleport")
	assert.ErrorIs(t, err, ErrUnknownMedium)
}

func TestNewSourceDefaults(t *testing.T) {
	src, err := NewSource("ksjn", MediumRadio, "wfm", 99.5)
	require.NoError(t, err)
	assert.True(t, src.Repeat)
	assert.False(t, src.Dynamic)
	assert.Equal(t, OffSource, src.Alternate)
	assert.Nil(t, src.Duration)
	assert.Equal(t, MediumRadio.Color(), src.Color)
}

func TestNewSourceLocations(t *testing.T) {
	t.Run("radio accepts numeric strings", func(t *testing.T) {
		src, err := NewSource("kfai", MediumRadio, "wfm", "90.3")
		require.NoError(t, err)
		assert.Equal(t, 90.3, src.Freq)
		assert.Equal(t, 90.3, src.Location())
	})

	t.Run("radio rejects non-numeric frequency", func(t *testing.T) {
		_, err := NewSource("fuzz", MediumRadio, "wfm", "one oh one")
		assert.ErrorIs(t, err, ErrBadFrequency)
	})

	t.Run("file joins artist/album/track", func(t *testing.T) {
		src, err := NewSource("ez", MediumFile, "ogg",
			"Uriah Heep/Demons and Wizards/03-Easy Livin.ogg")
		require.NoError(t, err)
		assert.Equal(t, "Uriah Heep/Demons and Wizards/03-Easy Livin.ogg", src.Location())
	})

	t.Run("file rejects short paths", func(t *testing.T) {
		_, err := NewSource("ez", MediumFile, "ogg", "just-a-file.ogg")
		assert.ErrorIs(t, err, ErrBadLocation)
	})

	t.Run("directory joins artist/album", func(t *testing.T) {
		src, err := NewSource("bigfun1", MediumDirectory, "ogg", "Miles Davis/Big Fun-Disc 1")
		require.NoError(t, err)
		assert.Equal(t, "Miles Davis", src.Artist)
		assert.Equal(t, "Miles Davis/Big Fun-Disc 1", src.Location())
	})

	t.Run("stream and playlist are plain strings", func(t *testing.T) {
		s, err := NewSource("cms", MediumStream, "mp3", "http://cms.example.org/cms.mp3")
		require.NoError(t, err)
		assert.Equal(t, "http://cms.example.org/cms.mp3", s.Location())

		p, err := NewSource("master", MediumPlaylist, "ogg", "master.m3u")
		require.NoError(t, err)
		assert.Equal(t, "master.m3u", p.Location())
	})
}

func TestHidden(t *testing.T) {
	src, err := NewSource("%snooze1", MediumFile, "ogg", "res/snooze/snooze-1hr.ogg")
	require.NoError(t, err)
	assert.True(t, src.Hidden())

	vis, err := NewSource("snooze", MediumFile, "ogg", "res/snooze/snooze-1hr.ogg")
	require.NoError(t, err)
	assert.False(t, vis.Hidden())
}

func TestAnnouncementLocation(t *testing.T) {
	src, err := NewSource("%motd", MediumFile, "ogg", "~/.config/rsked/resource/motd.ogg")
	require.NoError(t, err)
	src.Announcement = true
	src.AnnLocation = "~/.config/rsked/resource/motd.ogg"
	assert.Equal(t, "~/.config/rsked/resource/motd.ogg", src.Location())
}

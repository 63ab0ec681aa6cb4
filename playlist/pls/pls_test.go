package pls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uppfinnarn/tracklist/input"
)

func TestPlaylist(t *testing.T) {
	doc := "[playlist]\n" +
		"NumberOfEntries=2\n" +
		"File1=http://example.com/a.mp3\n" +
		"Title1=First\n" +
		"Length1=120\n" +
		"File2=http://example.com/live\n" +
		"Title2=Second\n" +
		"Length2=-1\n" +
		"Version=2\n"

	p := openStream(input.OpenMemory([]byte(doc), "audio/x-scpls"), "list.pls")
	require.NotNil(t, p)

	tracks := p.Tracks()
	require.Len(t, tracks, 2)

	assert.Equal(t, "http://example.com/a.mp3", tracks[0].Address)
	assert.Equal(t, "First", tracks[0].Tag.Name)
	assert.Equal(t, 120, tracks[0].Tag.DurationSeconds)

	assert.Equal(t, "http://example.com/live", tracks[1].Address)
	assert.Equal(t, -1, tracks[1].Tag.DurationSeconds)
}

func TestLowercaseKeys(t *testing.T) {
	doc := "[playlist]\n" +
		"numberofentries=1\n" +
		"file1=http://example.com/a.mp3\n"

	p := openStream(input.OpenMemory([]byte(doc), ""), "list.pls")
	require.NotNil(t, p)
	assert.Equal(t, 1, p.Len())
}

func TestMissingSectionYieldsNothing(t *testing.T) {
	assert.Nil(t, openStream(input.OpenMemory([]byte("File1=x\n"), ""), "list.pls"))
}

func TestNotAnIniYieldsNothing(t *testing.T) {
	assert.Nil(t, openStream(input.OpenMemory([]byte("{\"not\": \"ini\"}"), ""), "list.pls"))
}

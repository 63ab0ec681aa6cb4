package soundcloud

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleTrack(t *testing.T) {
	doc := `{"duration":180000,"title":"A","stream_url":"http://x"}`

	tracks, err := parseTracks(strings.NewReader(doc), "sekrit")
	require.NoError(t, err)
	require.Len(t, tracks, 1)

	assert.Equal(t, "http://x?client_id=sekrit", tracks[0].Address)
	assert.Equal(t, 180, tracks[0].Tag.DurationSeconds)
	assert.Equal(t, "A", tracks[0].Tag.Name)
}

func TestParsePlaylistKeepsDocumentOrder(t *testing.T) {
	doc := `{
		"title": "Some Playlist",
		"tracks": [
			{"duration":1000,"title":"T1","stream_url":"http://1"},
			{"duration":2000,"title":"T2","stream_url":"http://2"}
		]
	}`

	tracks, err := parseTracks(strings.NewReader(doc), "k")
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	assert.Equal(t, "T1", tracks[0].Tag.Name)
	assert.Equal(t, "http://1?client_id=k", tracks[0].Address)
	assert.Equal(t, "T2", tracks[1].Tag.Name)
	assert.Equal(t, "http://2?client_id=k", tracks[1].Address)
}

func TestParseNestedObjectInsideTrack(t *testing.T) {
	// The user object opens after stream_url was captured; closing it
	// must not end the track early.
	doc := `{
		"duration": 60000,
		"stream_url": "http://x",
		"user": {"id": 1, "username": "someone"},
		"title": "After"
	}`

	tracks, err := parseTracks(strings.NewReader(doc), "k")
	require.NoError(t, err)
	require.Len(t, tracks, 1)

	assert.Equal(t, "After", tracks[0].Tag.Name)
	assert.Equal(t, 60, tracks[0].Tag.DurationSeconds)
}

func TestParseDuplicateKeysLastWins(t *testing.T) {
	doc := `{"duration":1000,"duration":2000,"title":"A","title":"B","stream_url":"http://x"}`

	tracks, err := parseTracks(strings.NewReader(doc), "k")
	require.NoError(t, err)
	require.Len(t, tracks, 1)

	assert.Equal(t, 2, tracks[0].Tag.DurationSeconds)
	assert.Equal(t, "B", tracks[0].Tag.Name)
}

func TestParseMissingTitleLeavesNameEmpty(t *testing.T) {
	doc := `{"duration":1000,"stream_url":"http://x"}`

	tracks, err := parseTracks(strings.NewReader(doc), "k")
	require.NoError(t, err)
	require.Len(t, tracks, 1)

	assert.Equal(t, "", tracks[0].Tag.Name)
	assert.Equal(t, 1, tracks[0].Tag.DurationSeconds)
}

func TestParseObjectWithoutStreamURLYieldsNothing(t *testing.T) {
	doc := `{"duration":1000,"title":"A"}`

	tracks, err := parseTracks(strings.NewReader(doc), "k")
	require.NoError(t, err)
	assert.Empty(t, tracks)
}

func TestParseTruncatedDocumentDiscardsEverything(t *testing.T) {
	// T1 is complete; the document is cut off inside T2. No partial
	// results may survive.
	doc := `{"tracks":[
		{"duration":1000,"title":"T1","stream_url":"http://1"},
		{"duration":2000,"title":"T2","stream_`

	tracks, err := parseTracks(strings.NewReader(doc), "k")
	assert.Error(t, err)
	assert.Nil(t, tracks)
}

func TestParseMalformedDocumentDiscardsEverything(t *testing.T) {
	doc := `{"duration":1000,"stream_url":"http://1"} trailing garbage`

	tracks, err := parseTracks(strings.NewReader(doc), "k")
	assert.Error(t, err)
	assert.Nil(t, tracks)
}

package soundcloud

import (
	"io"

	"github.com/uppfinnarn/tracklist/playlist"
)

// Field the next value event refers to, as set by the last map key.
type fieldKind int

const (
	fieldOther fieldKind = iota
	fieldDuration
	fieldTitle
	fieldStreamURL
)

// A trackParser extracts track records from the event stream of a
// SoundCloud API response. The same machine handles both the single-object
// /tracks/ form and the nested /playlists/ form: a track is any object
// that carried a stream_url, and it is emitted when that object closes.
type trackParser struct {
	apikey string

	field      fieldKind
	durationMS int64
	title      string
	hasTitle   bool
	streamURL  string

	// Nesting depth relative to the object whose stream_url was seen.
	// 0 means not inside a track; 1 means the track's own object is the
	// innermost open one.
	gotURL int

	tracks []playlist.Track
}

func (p *trackParser) onMapKey(key string) {
	switch key {
	case "duration":
		p.field = fieldDuration
	case "title":
		p.field = fieldTitle
	case "stream_url":
		p.field = fieldStreamURL
	default:
		p.field = fieldOther
	}
}

func (p *trackParser) onInteger(v int64) {
	if p.field == fieldDuration {
		// Repeated keys overwrite; the last one wins.
		p.durationMS = v
	}
}

func (p *trackParser) onString(v string) {
	switch p.field {
	case fieldTitle:
		p.title = v
		p.hasTitle = true
	case fieldStreamURL:
		p.streamURL = v
		p.gotURL = 1
	}
}

func (p *trackParser) onStartObject() {
	if p.gotURL > 0 {
		p.gotURL++
	}
}

func (p *trackParser) onEndObject() {
	if p.gotURL > 1 {
		p.gotURL--
		return
	}
	if p.gotURL == 0 {
		return
	}

	// The track's own object just closed; materialize it.
	p.gotURL = 0

	track := playlist.Track{
		Address: p.streamURL + "?client_id=" + p.apikey,
		Tag: playlist.Tag{
			DurationSeconds: int(p.durationMS / 1000),
		},
	}
	if p.hasTitle {
		track.Tag.Name = p.title
	}
	p.tracks = append(p.tracks, track)
}

func (p *trackParser) handle(ev event) {
	switch ev.kind {
	case evMapKey:
		p.onMapKey(ev.str)
	case evInteger:
		p.onInteger(ev.num)
	case evString:
		p.onString(ev.str)
	case evStartObject:
		p.onStartObject()
	case evEndObject:
		p.onEndObject()
	}
}

// parseTracks runs the event source to completion. Any transport or parse
// error discards everything; there is no partial success.
func parseTracks(r io.Reader, apikey string) ([]playlist.Track, error) {
	src := newEventSource(r)
	p := &trackParser{apikey: apikey}

	for {
		ev, err := src.Next()
		if err == io.EOF {
			return p.tracks, nil
		}
		if err != nil {
			return nil, err
		}
		p.handle(ev)
	}
}

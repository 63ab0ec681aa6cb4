package playlist

// A Tag carries the displayable metadata for a track.
type Tag struct {
	// Duration in whole seconds, or -1 if unknown.
	DurationSeconds int

	// Display name. The empty string means no name was provided.
	Name string
}

// A Track is one playable entry of a resolved playlist.
type Track struct {
	// Address is what gets handed to the player, ready to open as-is.
	Address string
	Tag     Tag
}

// A Provider is the result of a successful resolution: a finite, ordered,
// in-memory track list. It is fully populated before it is returned and
// read-only afterwards; iteration can be restarted any number of times.
type Provider struct {
	tracks []Track
	pos    int
}

// NewProvider wraps a track list into a Provider. The caller must not
// modify the slice afterwards.
func NewProvider(tracks []Track) *Provider {
	return &Provider{tracks: tracks}
}

// Len returns the number of tracks.
func (p *Provider) Len() int { return len(p.tracks) }

// Next returns the next track, or false once the list is exhausted.
func (p *Provider) Next() (Track, bool) {
	if p.pos >= len(p.tracks) {
		return Track{}, false
	}
	t := p.tracks[p.pos]
	p.pos++
	return t, true
}

// Restart rewinds iteration back to the first track.
func (p *Provider) Restart() { p.pos = 0 }

// Tracks returns the full track list in document order.
func (p *Provider) Tracks() []Track { return p.tracks }

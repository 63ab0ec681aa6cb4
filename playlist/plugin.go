// Package playlist resolves playback addresses - URIs, local paths or
// already-opened streams - into track lists, by trying an ordered set of
// source-specific plugins until one succeeds.
package playlist

import (
	"strconv"

	"github.com/uppfinnarn/tracklist/input"
)

// A Config is a plugin's configuration block: a flat set of string options.
// A missing key reads as the empty string.
type Config map[string]string

// String returns the value for key, or "" if unset.
func (c Config) String(key string) string { return c[key] }

// Bool returns the value for key parsed as a boolean, or def if the key is
// unset or unparseable.
func (c Config) Bool(key string, def bool) bool {
	v, ok := c[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// A Plugin describes one playlist source. All capabilities are optional;
// dispatch code checks for nil before calling. A plugin without Init is
// enabled unconditionally.
type Plugin struct {
	Name string

	// Init is called once at startup with the plugin's configuration
	// block. Returning false marks the plugin unavailable for the rest
	// of the run; that is not an error.
	Init func(cfg Config) bool

	// Finish is called once at shutdown, for enabled plugins only.
	Finish func()

	// OpenURI resolves an address into a Provider, or nil if this
	// particular address isn't accepted.
	OpenURI func(uri string) *Provider

	// OpenStream resolves an already-opened stream into a Provider, or
	// nil. The stream is positioned at its start when called; ownership
	// stays with the caller.
	OpenStream func(is input.Stream, uri string) *Provider

	// Address forms this plugin claims. Each set may be empty.
	Schemes   []string
	Suffixes  []string
	MimeTypes []string
}

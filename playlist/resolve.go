package playlist

import (
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/uppfinnarn/tracklist/input"
)

// uriScheme returns the text before "://", or "" if the URI has no scheme.
func uriScheme(uri string) string {
	scheme, _, ok := strings.Cut(uri, "://")
	if !ok {
		return ""
	}
	return scheme
}

// uriSuffix returns the file-extension-like trailing segment, or "" if
// there is none.
func uriSuffix(uri string) string {
	dot := strings.LastIndexByte(uri, '.')
	if dot < 0 {
		return ""
	}
	suffix := uri[dot+1:]
	if suffix == "" || strings.ContainsAny(suffix, "/\\") {
		return ""
	}
	return suffix
}

// stripMimeParams cuts a content type at its first parameter (";..."). The
// second return is false if what's left is empty, in which case mime
// dispatch is skipped entirely.
func stripMimeParams(mime string) (string, bool) {
	base, _, _ := strings.Cut(mime, ";")
	if base == "" {
		return "", false
	}
	return base, true
}

func (r *Registry) openURIScheme(uri string, tried []bool) *Provider {
	scheme := uriScheme(uri)
	if scheme == "" {
		return nil
	}

	for i := range r.entries {
		e := &r.entries[i]
		p := e.plugin
		if !e.enabled || p.OpenURI == nil || !slices.Contains(p.Schemes, scheme) {
			continue
		}

		if provider := p.OpenURI(uri); provider != nil {
			return provider
		}

		// The scheme matched but this address wasn't accepted; don't
		// invoke the same plugin again from the suffix pass.
		tried[i] = true
	}

	return nil
}

func (r *Registry) openURISuffix(uri string, tried []bool) *Provider {
	suffix := uriSuffix(uri)
	if suffix == "" {
		return nil
	}

	for i := range r.entries {
		e := &r.entries[i]
		p := e.plugin
		if !e.enabled || tried[i] || p.OpenURI == nil || !slices.Contains(p.Suffixes, suffix) {
			continue
		}

		if provider := p.OpenURI(uri); provider != nil {
			return provider
		}
	}

	return nil
}

// OpenURI resolves an address by scheme, falling back to suffix. Plugins
// already tried by the scheme pass are skipped by the suffix pass. Returns
// nil if no plugin accepted the address.
func (r *Registry) OpenURI(uri string) *Provider {
	tried := make([]bool, len(r.entries))

	provider := r.openURIScheme(uri, tried)
	if provider == nil {
		provider = r.openURISuffix(uri, tried)
	}
	return provider
}

func (r *Registry) openStreamMime(is input.Stream, uri, mime string) *Provider {
	for i := range r.entries {
		e := &r.entries[i]
		p := e.plugin
		if !e.enabled || p.OpenStream == nil || !slices.Contains(p.MimeTypes, mime) {
			continue
		}

		// Rewind the stream, so each plugin gets a fresh start.
		if err := is.Rewind(); err != nil {
			log.WithError(err).WithField("plugin", p.Name).Debug("Rewind failed")
		}

		if provider := p.OpenStream(is, uri); provider != nil {
			return provider
		}
	}

	return nil
}

func (r *Registry) openStreamSuffix(is input.Stream, uri, suffix string) *Provider {
	for i := range r.entries {
		e := &r.entries[i]
		p := e.plugin
		if !e.enabled || p.OpenStream == nil || !slices.Contains(p.Suffixes, suffix) {
			continue
		}

		// Rewind the stream, so each plugin gets a fresh start.
		if err := is.Rewind(); err != nil {
			log.WithError(err).WithField("plugin", p.Name).Debug("Rewind failed")
		}

		if provider := p.OpenStream(is, uri); provider != nil {
			return provider
		}
	}

	return nil
}

// OpenStream resolves an already-opened stream, dispatching on its content
// type first and falling back to the URI's suffix. Blocks until the stream
// is ready. The stream stays owned by the caller whether or not resolution
// succeeds.
func (r *Registry) OpenStream(is input.Stream, uri string) *Provider {
	if err := is.WaitReady(); err != nil {
		log.WithError(err).Warn("Stream never became ready")
		return nil
	}

	if mime := is.MimeType(); mime != "" {
		if base, ok := stripMimeParams(mime); ok {
			if provider := r.openStreamMime(is, uri, base); provider != nil {
				return provider
			}
		}
	}

	if suffix := uriSuffix(uri); suffix != "" {
		if provider := r.openStreamSuffix(is, uri, suffix); provider != nil {
			return provider
		}
	}

	return nil
}

// SuffixSupported returns true if any enabled plugin claims the suffix.
func (r *Registry) SuffixSupported(suffix string) bool {
	for _, e := range r.entries {
		if e.enabled && slices.Contains(e.plugin.Suffixes, suffix) {
			return true
		}
	}
	return false
}

// OpenPath resolves a local path. The path's suffix is checked against the
// enabled plugins before anything is opened, so unsupported paths cost no
// I/O. On success the opened stream is returned alongside the Provider and
// the caller must close it; on failure nothing is leaked.
func (r *Registry) OpenPath(path string) (*Provider, input.Stream) {
	suffix := uriSuffix(path)
	if suffix == "" || !r.SuffixSupported(suffix) {
		return nil, nil
	}

	is, err := input.OpenFile(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("Couldn't open playlist file")
		return nil, nil
	}

	if err := is.WaitReady(); err != nil {
		log.WithError(err).WithField("path", path).Warn("Playlist file never became ready")
		is.Close()
		return nil, nil
	}

	provider := r.openStreamSuffix(is, path, suffix)
	if provider == nil {
		is.Close()
		return nil, nil
	}

	return provider, is
}

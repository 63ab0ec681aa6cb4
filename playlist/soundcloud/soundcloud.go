// Package soundcloud resolves soundcloud:// addresses into track lists by
// streaming the SoundCloud API's JSON responses. Accepted forms:
//
//	soundcloud://track/<track-id>
//	soundcloud://playlist/<playlist-id>
//	soundcloud://url/<url or path of soundcloud page>
package soundcloud

import (
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/uppfinnarn/tracklist/input"
	"github.com/uppfinnarn/tracklist/playlist"
)

const defaultAPIBase = "https://api.soundcloud.com"

type service struct {
	apiBase string
	apikey  string
	client  *http.Client
}

// Plugin returns the soundcloud playlist plugin. It requires an "apikey"
// configuration option; without one, Init reports failure and the plugin
// stays disabled.
func Plugin() *playlist.Plugin {
	s := &service{}
	return &playlist.Plugin{
		Name:    "soundcloud",
		Init:    s.init,
		Finish:  s.finish,
		OpenURI: s.openURI,
		Schemes: []string{"soundcloud"},
	}
}

func (s *service) init(cfg playlist.Config) bool {
	key := cfg.String("apikey")
	if key == "" {
		log.Debug("Disabling the soundcloud playlist plugin because API key is not set")
		return false
	}

	s.apiBase = defaultAPIBase
	s.apikey = key
	s.client = &http.Client{}
	return true
}

func (s *service) finish() {
	s.client.CloseIdleConnections()
}

// resolveEndpoint builds a resolver API call for a soundcloud page URL or
// path. The API follows the redirect to the right resource by itself.
func (s *service) resolveEndpoint(uri string) string {
	var u string
	switch {
	case strings.HasPrefix(uri, "https://"), strings.HasPrefix(uri, "http://"):
		u = uri
	case strings.HasPrefix(uri, "soundcloud.com"):
		u = "https://" + uri
	default:
		// Assume it's just a path on soundcloud.com.
		u = "https://soundcloud.com/" + uri
	}
	return s.apiBase + "/resolve.json?url=" + url.QueryEscape(u) + "&client_id=" + s.apikey
}

// endpointFor maps an address onto its API endpoint, or "" if the address
// form isn't recognized.
func (s *service) endpointFor(uri string) string {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok || scheme != "soundcloud" {
		log.WithField("uri", uri).Warn("Incompatible scheme for soundcloud plugin")
		return ""
	}

	kind, arg, _ := strings.Cut(rest, "/")
	switch kind {
	case "track":
		return s.apiBase + "/tracks/" + arg + ".json?client_id=" + s.apikey
	case "playlist":
		return s.apiBase + "/playlists/" + arg + ".json?client_id=" + s.apikey
	case "url":
		return s.resolveEndpoint(arg)
	default:
		return ""
	}
}

func (s *service) openURI(uri string) *playlist.Provider {
	endpoint := s.endpointFor(uri)
	if endpoint == "" {
		log.WithField("uri", uri).Warn("Unknown soundcloud URI")
		return nil
	}

	is := input.OpenHTTP(s.client, endpoint)
	defer is.Close()

	if err := is.WaitReady(); err != nil {
		log.WithError(err).WithField("uri", uri).Warn("Couldn't fetch soundcloud playlist")
		return nil
	}

	tracks, err := parseTracks(is, s.apikey)
	if err != nil {
		log.WithError(err).WithField("uri", uri).Warn("Couldn't parse soundcloud playlist")
		return nil
	}

	return playlist.NewProvider(tracks)
}

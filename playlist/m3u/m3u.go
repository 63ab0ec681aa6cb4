// Package m3u parses M3U playlists, plain and extended.
package m3u

import (
	"bufio"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/uppfinnarn/tracklist/input"
	"github.com/uppfinnarn/tracklist/playlist"
)

// Plugin returns the m3u playlist plugin.
func Plugin() *playlist.Plugin {
	return &playlist.Plugin{
		Name:       "m3u",
		OpenStream: openStream,
		Suffixes:   []string{"m3u", "m3u8"},
		MimeTypes: []string{
			"audio/x-mpegurl",
			"audio/mpegurl",
			"application/vnd.apple.mpegurl",
		},
	}
}

// parseExtinf extracts duration and display name from an "#EXTINF:" line.
// The directive looks like "#EXTINF:123,Some Artist - Some Title"; a
// duration of -1 means unknown.
func parseExtinf(line string) playlist.Tag {
	tag := playlist.Tag{DurationSeconds: -1}

	body := strings.TrimPrefix(line, "#EXTINF:")
	durText, name, _ := strings.Cut(body, ",")

	if d, err := strconv.Atoi(strings.TrimSpace(durText)); err == nil && d >= 0 {
		tag.DurationSeconds = d
	}
	tag.Name = strings.TrimSpace(name)
	return tag
}

func openStream(is input.Stream, uri string) *playlist.Provider {
	sc := bufio.NewScanner(is)

	var tracks []playlist.Track
	pending := playlist.Tag{DurationSeconds: -1}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#EXTINF:"):
			pending = parseExtinf(line)
		case strings.HasPrefix(line, "#"):
			// Comment or directive we don't care about.
			continue
		default:
			tracks = append(tracks, playlist.Track{Address: line, Tag: pending})
			pending = playlist.Tag{DurationSeconds: -1}
		}
	}
	if err := sc.Err(); err != nil {
		log.WithError(err).Warn("Couldn't read m3u playlist")
		return nil
	}

	if len(tracks) == 0 {
		return nil
	}
	return playlist.NewProvider(tracks)
}

// Package pls parses PLS playlists, an INI dialect with a [playlist]
// section of numbered FileN/TitleN/LengthN keys.
package pls

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"github.com/uppfinnarn/tracklist/input"
	"github.com/uppfinnarn/tracklist/playlist"
)

// Plugin returns the pls playlist plugin.
func Plugin() *playlist.Plugin {
	return &playlist.Plugin{
		Name:       "pls",
		OpenStream: openStream,
		Suffixes:   []string{"pls"},
		MimeTypes:  []string{"audio/x-scpls"},
	}
}

func openStream(is input.Stream, uri string) *playlist.Provider {
	data, err := io.ReadAll(is)
	if err != nil {
		log.WithError(err).Warn("Couldn't read pls playlist")
		return nil
	}

	// Keys in the wild vary in case ("file1" vs "File1").
	f, err := ini.InsensitiveLoad(data)
	if err != nil {
		log.WithError(err).Warn("Couldn't parse pls playlist")
		return nil
	}

	sec, err := f.GetSection("playlist")
	if err != nil {
		return nil
	}

	n := sec.Key("numberofentries").MustInt(0)
	if n <= 0 {
		return nil
	}

	var tracks []playlist.Track
	for i := 1; i <= n; i++ {
		address := sec.Key(fmt.Sprintf("file%d", i)).String()
		if address == "" {
			continue
		}

		tag := playlist.Tag{
			DurationSeconds: -1,
			Name:            sec.Key(fmt.Sprintf("title%d", i)).String(),
		}
		// Length of -1 means a stream of unknown duration.
		if length := sec.Key(fmt.Sprintf("length%d", i)).MustInt(-1); length >= 0 {
			tag.DurationSeconds = length
		}

		tracks = append(tracks, playlist.Track{Address: address, Tag: tag})
	}

	if len(tracks) == 0 {
		return nil
	}
	return playlist.NewProvider(tracks)
}

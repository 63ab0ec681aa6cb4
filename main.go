package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/uppfinnarn/tracklist/playlist"
	"github.com/uppfinnarn/tracklist/playlist/m3u"
	"github.com/uppfinnarn/tracklist/playlist/pls"
	"github.com/uppfinnarn/tracklist/playlist/soundcloud"
)

// newRegistry builds the plugin registry. Order matters: it's the dispatch
// order for every resolution.
func newRegistry() *playlist.Registry {
	return playlist.NewRegistry(
		m3u.Plugin(),
		pls.Plugin(),
		soundcloud.Plugin(),
	)
}

// pluginConfigs builds the per-plugin configuration blocks from CLI flags.
func pluginConfigs(cc *cli.Context) map[string]playlist.Config {
	configs := map[string]playlist.Config{}
	if key := cc.String("soundcloud-apikey"); key != "" {
		configs["soundcloud"] = playlist.Config{"apikey": key}
	}
	return configs
}

// isRemote returns true if the address should be resolved as a URI rather
// than as a local path.
func isRemote(addr string) bool {
	return strings.Contains(addr, "://")
}

func formatDuration(seconds int) string {
	if seconds < 0 {
		return "?:??"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func actionResolve(cc *cli.Context) error {
	addr := cc.Args().First()
	if addr == "" {
		return cli.Exit("Missing address", 1)
	}

	registry := newRegistry()
	registry.Initialize(pluginConfigs(cc))
	defer registry.Finalize()

	var provider *playlist.Provider
	if isRemote(addr) {
		provider = registry.OpenURI(addr)
	} else {
		p, is := registry.OpenPath(addr)
		if is != nil {
			defer is.Close()
		}
		provider = p
	}

	if provider == nil {
		return cli.Exit("No plugin accepted the address", 1)
	}

	for {
		track, ok := provider.Next()
		if !ok {
			break
		}
		name := track.Tag.Name
		if name == "" {
			name = "(untitled)"
		}
		fmt.Printf("%s  %s\n    %s\n", formatDuration(track.Tag.DurationSeconds), name, track.Address)
	}
	return nil
}

func actionPlugins(cc *cli.Context) error {
	registry := newRegistry()
	registry.Initialize(pluginConfigs(cc))
	defer registry.Finalize()

	for _, st := range registry.Status() {
		state := "disabled"
		if st.Enabled {
			state = "enabled"
		}
		fmt.Printf("%-12s %s\n", st.Name, state)
	}
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("Couldn't load .env")
	}

	app := cli.App{}
	app.Name = "tracklist"
	app.Usage = "Resolves playback addresses into track lists"
	app.HideVersion = true
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			EnvVars: []string{"TRACKLIST_VERBOSE"},
			Usage:   "Log debug messages",
		},
		&cli.StringFlag{
			Name:    "soundcloud-apikey",
			Usage:   "SoundCloud API key",
			EnvVars: []string{"SOUNDCLOUD_APIKEY"},
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:      "resolve",
			Usage:     "Resolves an address and prints its tracks",
			ArgsUsage: "<uri or path>",
			Action:    actionResolve,
		},
		{
			Name:   "plugins",
			Usage:  "Lists plugins in dispatch order",
			Action: actionPlugins,
		},
	}
	app.Before = func(cc *cli.Context) error {
		if cc.Bool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	}
	if app.Run(os.Args) != nil {
		os.Exit(1)
	}
}

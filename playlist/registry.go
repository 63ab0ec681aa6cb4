package playlist

import (
	log "github.com/sirupsen/logrus"
)

type entry struct {
	plugin  *Plugin
	enabled bool
}

// A Registry holds the fixed, ordered plugin list. Dispatch order is
// registration order. Initialize and Finalize are meant to be called once
// each, at startup and shutdown; the Registry is otherwise read-only.
type Registry struct {
	entries []entry
}

// NewRegistry builds a registry from plugins in dispatch order.
func NewRegistry(plugins ...*Plugin) *Registry {
	r := &Registry{entries: make([]entry, len(plugins))}
	for i, p := range plugins {
		r.entries[i] = entry{plugin: p}
	}
	return r
}

// Initialize runs every plugin's Init with its named configuration block,
// in registration order. A missing block means an empty configuration. A
// block with enabled=false skips the plugin entirely, Init included. A
// plugin whose Init returns false stays disabled for the rest of the run;
// this is logged, never propagated.
func (r *Registry) Initialize(configs map[string]Config) {
	for i := range r.entries {
		p := r.entries[i].plugin

		cfg, ok := configs[p.Name]
		if !ok {
			cfg = Config{}
		} else if !cfg.Bool("enabled", true) {
			log.WithField("plugin", p.Name).Info("Plugin disabled by configuration")
			continue
		}

		enabled := true
		if p.Init != nil {
			enabled = p.Init(cfg)
		}
		r.entries[i].enabled = enabled

		if enabled {
			log.WithField("plugin", p.Name).Debug("Plugin enabled")
		} else {
			log.WithField("plugin", p.Name).Warn("Plugin unavailable")
		}
	}
}

// Finalize runs Finish on every enabled plugin, in registration order.
func (r *Registry) Finalize() {
	for _, e := range r.entries {
		if e.enabled && e.plugin.Finish != nil {
			e.plugin.Finish()
		}
	}
}

// A PluginStatus reports one plugin's registration state.
type PluginStatus struct {
	Name    string
	Enabled bool
}

// Status lists all plugins in registration order with their enabled flags.
func (r *Registry) Status() []PluginStatus {
	out := make([]PluginStatus, len(r.entries))
	for i, e := range r.entries {
		out[i] = PluginStatus{Name: e.plugin.Name, Enabled: e.enabled}
	}
	return out
}

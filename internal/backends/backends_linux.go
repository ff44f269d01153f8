//go:build linux

// Package backends wires the per-OS default backend set into a registry.
package backends

import (
	"github.com/rs/zerolog"

	"medley/internal/command"
	"medley/internal/mpris"
	"medley/internal/player"
)

// Defaults returns the registration routine for the backends relevant to
// this host OS. The host passes it to Registry.Initialize once at startup.
func Defaults(runner command.Runner, logger zerolog.Logger) func(*player.Registry) {
	probe := mpris.NewBusProbe(logger)
	return func(r *player.Registry) {
		r.Register("Spotify", func() (player.Backend, error) {
			return mpris.New("Spotify", "spotify", runner, probe, logger), nil
		})
		r.Register("VLC", func() (player.Backend, error) {
			return mpris.New("VLC", "vlc", runner, probe, logger), nil
		})
		r.Register("Rhythmbox", func() (player.Backend, error) {
			return mpris.NewRhythmbox(runner, logger), nil
		})
	}
}

//go:build darwin

package backends

import (
	"github.com/rs/zerolog"

	"medley/internal/command"
	"medley/internal/osa"
	"medley/internal/player"
)

// Defaults returns the registration routine for the backends relevant to
// this host OS. The host passes it to Registry.Initialize once at startup.
func Defaults(runner command.Runner, logger zerolog.Logger) func(*player.Registry) {
	return func(r *player.Registry) {
		r.Register("Spotify", func() (player.Backend, error) {
			return osa.NewSpotify(runner, logger), nil
		})
		r.Register("Music", func() (player.Backend, error) {
			return osa.NewMusic(runner, logger), nil
		})
	}
}

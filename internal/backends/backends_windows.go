//go:build windows

package backends

import (
	"github.com/rs/zerolog"

	"medley/internal/command"
	"medley/internal/player"
	"medley/internal/wintitle"
)

// Defaults returns the registration routine for the backends relevant to
// this host OS. The host passes it to Registry.Initialize once at startup.
func Defaults(runner command.Runner, logger zerolog.Logger) func(*player.Registry) {
	return func(r *player.Registry) {
		r.Register("Spotify", func() (player.Backend, error) {
			return wintitle.New("Spotify", "Spotify", "Spotify.exe", wintitle.MediaKeys, runner, logger), nil
		})
		r.Register("iTunes", func() (player.Backend, error) {
			return wintitle.New("iTunes", "iTunes", "iTunes.exe", wintitle.TransportKeys, runner, logger), nil
		})
		r.Register("Windows Media Player", func() (player.Backend, error) {
			return wintitle.New("Windows Media Player", "Windows Media Player", "wmplayer.exe", wintitle.LegacyTransportKeys, runner, logger), nil
		})
	}
}

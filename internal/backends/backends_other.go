//go:build !linux && !darwin && !windows

package backends

import (
	"github.com/rs/zerolog"

	"medley/internal/command"
	"medley/internal/player"
)

// Defaults registers nothing on platforms without a native backend set; the
// manual fallback backend remains available through direct construction.
func Defaults(runner command.Runner, logger zerolog.Logger) func(*player.Registry) {
	return func(r *player.Registry) {}
}

// Package fallback provides a manual backend for environments where
// liveness probing is unreliable. Every operation defers to playerctl,
// keyed by the lower-cased player name.
package fallback

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"medley/internal/command"
	"medley/internal/player"
)

// Backend is a generic playerctl-driven adapter. It is constructed directly
// by a caller rather than through discovery, and always reports itself as
// running so the caller stays in control of when to talk to it.
type Backend struct {
	name    string // display name as given by the caller
	ident   string // lower-cased playerctl player identifier
	runner  command.Runner
	logger  zerolog.Logger
	playing bool
	volume  float64
	track   *player.TrackInfo
}

// New creates a manual backend for the named player type.
func New(name string, runner command.Runner, logger zerolog.Logger) *Backend {
	return &Backend{
		name:   name,
		ident:  strings.ToLower(name),
		runner: runner,
		logger: logger.With().Str("component", "fallback").Str("player", name).Logger(),
		track:  player.NewTrackInfo(),
	}
}

// Name returns the player's display name.
func (b *Backend) Name() string { return b.name }

// IsRunning always reports true; the manual backend exists precisely for
// hosts where probing cannot be trusted.
func (b *Backend) IsRunning(ctx context.Context) bool { return true }

// CurrentTrack refreshes the owned TrackInfo from playerctl's formatted
// metadata output and returns it.
func (b *Backend) CurrentTrack(ctx context.Context) *player.TrackInfo {
	// Tab separators: titles and album names may contain " - " or "|".
	out := b.runner.Output(ctx,
		"playerctl -p "+b.ident+" metadata --format \"{{title}}\t{{artist}}\t{{album}}\t{{mpris:length}}\"")
	if out == "" {
		return b.track
	}

	parts := strings.Split(out, "\t")
	if len(parts) != 4 {
		b.logger.Warn().Str("output", out).Msg("Unexpected metadata output")
		return b.track
	}

	b.track.SetTitle(strings.TrimSpace(parts[0]))
	b.track.SetArtist(strings.TrimSpace(parts[1]))
	b.track.SetAlbum(strings.TrimSpace(parts[2]))
	if micros, err := strconv.ParseInt(strings.TrimSpace(parts[3]), 10, 64); err == nil {
		b.track.Duration = float64(micros) / 1e6
	}

	if pos := b.runner.Output(ctx, "playerctl -p "+b.ident+" position"); pos != "" {
		if p, err := strconv.ParseFloat(pos, 64); err == nil {
			b.track.Position = p
		}
	}
	return b.track
}

// IsPlaying queries the live playerctl status.
func (b *Backend) IsPlaying(ctx context.Context) bool {
	out := b.runner.Output(ctx, "playerctl -p "+b.ident+" status")
	b.playing = strings.Contains(out, "Playing")
	return b.playing
}

// Play resumes playback.
func (b *Backend) Play(ctx context.Context) {
	b.runner.Output(ctx, "playerctl -p "+b.ident+" play")
	b.playing = true
}

// Pause pauses playback.
func (b *Backend) Pause(ctx context.Context) {
	b.runner.Output(ctx, "playerctl -p "+b.ident+" pause")
	b.playing = false
}

// Next skips to the next track.
func (b *Backend) Next(ctx context.Context) {
	b.runner.Output(ctx, "playerctl -p "+b.ident+" next")
}

// Previous returns to the previous track.
func (b *Backend) Previous(ctx context.Context) {
	b.runner.Output(ctx, "playerctl -p "+b.ident+" previous")
}

// SetVolume clamps, caches and forwards the level.
func (b *Backend) SetVolume(ctx context.Context, v float64) {
	b.volume = player.ClampVolume(v)
	b.runner.Output(ctx, "playerctl -p "+b.ident+" volume "+strconv.FormatFloat(b.volume, 'f', 2, 64))
}

// Volume re-queries playerctl, keeping the cache on a failed parse.
func (b *Backend) Volume(ctx context.Context) float64 {
	out := b.runner.Output(ctx, "playerctl -p "+b.ident+" volume")
	if v, err := strconv.ParseFloat(out, 64); err == nil {
		b.volume = player.ClampVolume(v)
	}
	return b.volume
}

// Package osa controls macOS players through one-line AppleScript commands
// sent with osascript.
package osa

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"medley/internal/command"
	"medley/internal/player"
)

// delimiter separates the fields of the combined metadata query. Chosen so
// it cannot collide with " - " or "|" sequences that occur in real titles.
const delimiter = "|||"

// Backend is a scripting-bridge adapter for one macOS player. The scripted
// status query is cheap enough that IsPlaying re-queries the live state on
// every read.
type Backend struct {
	name       string // display name, registry key
	app        string // application name as AppleScript addresses it
	durationMS bool   // true when the app reports duration in milliseconds
	runner     command.Runner
	logger     zerolog.Logger
	playing    bool
	volume     float64
	track      *player.TrackInfo
}

// NewSpotify creates the backend for the Spotify desktop application, which
// reports track duration in milliseconds.
func NewSpotify(runner command.Runner, logger zerolog.Logger) *Backend {
	return newBackend("Spotify", "Spotify", true, runner, logger)
}

// NewMusic creates the backend for Apple Music, which reports duration in
// seconds.
func NewMusic(runner command.Runner, logger zerolog.Logger) *Backend {
	return newBackend("Music", "Music", false, runner, logger)
}

func newBackend(name, app string, durationMS bool, runner command.Runner, logger zerolog.Logger) *Backend {
	return &Backend{
		name:       name,
		app:        app,
		durationMS: durationMS,
		runner:     runner,
		logger:     logger.With().Str("component", "osa").Str("player", name).Logger(),
		track:      player.NewTrackInfo(),
	}
}

// Name returns the player's display name.
func (b *Backend) Name() string { return b.name }

// IsRunning asks System Events whether the application's process exists.
func (b *Backend) IsRunning(ctx context.Context) bool {
	script := fmt.Sprintf(`tell application "System Events" to (name of processes) contains "%s"`, b.app)
	return b.osascript(ctx, script) == "true"
}

// CurrentTrack refreshes the owned TrackInfo with a single combined query
// and returns it. A failed or empty reply leaves the prior values in place.
func (b *Backend) CurrentTrack(ctx context.Context) *player.TrackInfo {
	script := fmt.Sprintf(
		`tell application "%s" to name of current track & "%s" & artist of current track & "%s" & album of current track & "%s" & (duration of current track as string) & "%s" & (player position as string)`,
		b.app, delimiter, delimiter, delimiter, delimiter)

	out := b.osascript(ctx, script)
	if out == "" {
		return b.track
	}

	parts := strings.Split(out, delimiter)
	if len(parts) != 5 {
		b.logger.Warn().Str("output", out).Msg("Unexpected track query output")
		return b.track
	}

	b.track.SetTitle(strings.TrimSpace(parts[0]))
	b.track.SetArtist(strings.TrimSpace(parts[1]))
	b.track.SetAlbum(strings.TrimSpace(parts[2]))

	if d, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64); err == nil {
		if b.durationMS {
			d /= 1000
		}
		b.track.Duration = d
	}
	if p, err := strconv.ParseFloat(strings.TrimSpace(parts[4]), 64); err == nil {
		b.track.Position = p
	}
	return b.track
}

// IsPlaying queries the live player state.
func (b *Backend) IsPlaying(ctx context.Context) bool {
	script := fmt.Sprintf(`tell application "%s" to player state as string`, b.app)
	b.playing = b.osascript(ctx, script) == "playing"
	return b.playing
}

// Play resumes playback. No-op when the application is not running.
func (b *Backend) Play(ctx context.Context) {
	if !b.IsRunning(ctx) {
		return
	}
	b.osascript(ctx, fmt.Sprintf(`tell application "%s" to play`, b.app))
	b.playing = true
}

// Pause pauses playback. No-op when the application is not running.
func (b *Backend) Pause(ctx context.Context) {
	if !b.IsRunning(ctx) {
		return
	}
	b.osascript(ctx, fmt.Sprintf(`tell application "%s" to pause`, b.app))
	b.playing = false
}

// Next skips to the next track. No-op when the application is not running.
func (b *Backend) Next(ctx context.Context) {
	if !b.IsRunning(ctx) {
		return
	}
	b.osascript(ctx, fmt.Sprintf(`tell application "%s" to next track`, b.app))
}

// Previous returns to the previous track. No-op when the application is not
// running.
func (b *Backend) Previous(ctx context.Context) {
	if !b.IsRunning(ctx) {
		return
	}
	b.osascript(ctx, fmt.Sprintf(`tell application "%s" to previous track`, b.app))
}

// SetVolume clamps v to [0, 1], caches it and sets the application's sound
// volume, which AppleScript expresses on a 0-100 scale.
func (b *Backend) SetVolume(ctx context.Context, v float64) {
	b.volume = player.ClampVolume(v)
	level := int(b.volume * 100)
	b.osascript(ctx, fmt.Sprintf(`tell application "%s" to set sound volume to %d`, b.app, level))
}

// Volume re-queries the sound volume, converting from the 0-100 scale and
// updating the cache on success.
func (b *Backend) Volume(ctx context.Context) float64 {
	out := b.osascript(ctx, fmt.Sprintf(`tell application "%s" to sound volume as string`, b.app))
	if level, err := strconv.Atoi(strings.TrimSpace(out)); err == nil {
		b.volume = player.ClampVolume(float64(level) / 100)
	}
	return b.volume
}

func (b *Backend) osascript(ctx context.Context, script string) string {
	return b.runner.Output(ctx, "osascript -e '"+script+"'")
}

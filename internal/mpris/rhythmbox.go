package mpris

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"medley/internal/command"
	"medley/internal/player"
)

const (
	rhythmboxDest   = "org.gnome.Rhythmbox"
	rhythmboxPath   = "/org/gnome/Rhythmbox/Player"
	rhythmboxIfc    = "org.gnome.Rhythmbox.Player"
	rhythmboxBinary = "rhythmbox"
)

// Rhythmbox predates the player's MPRIS support and talks to the vendor
// D-Bus interface instead: playPause takes an explicit boolean, and volume
// has dedicated get/set methods. Metadata comes from rhythmbox-client's
// format strings rather than a property dump. IsPlaying trusts the flag set
// by the last Play/Pause call; the vendor getPlaying query is not re-issued
// per read.
type Rhythmbox struct {
	runner  command.Runner
	logger  zerolog.Logger
	playing bool
	volume  float64
	track   *player.TrackInfo
}

// NewRhythmbox creates the legacy Rhythmbox backend.
func NewRhythmbox(runner command.Runner, logger zerolog.Logger) *Rhythmbox {
	return &Rhythmbox{
		runner: runner,
		logger: logger.With().Str("component", "rhythmbox").Logger(),
		track:  player.NewTrackInfo(),
	}
}

// Name returns the player's display name.
func (b *Rhythmbox) Name() string { return "Rhythmbox" }

// IsRunning checks the process table directly, then via grep.
func (b *Rhythmbox) IsRunning(ctx context.Context) bool {
	if out := b.runner.Output(ctx, "pidof "+rhythmboxBinary); out != "" {
		return true
	}
	if out := b.runner.Output(ctx, "ps -e | grep -i "+rhythmboxBinary+" | grep -v grep"); out != "" {
		return true
	}
	return false
}

// CurrentTrack refreshes the owned TrackInfo from rhythmbox-client's
// formatted output and returns it.
func (b *Rhythmbox) CurrentTrack(ctx context.Context) *player.TrackInfo {
	out := b.runner.Output(ctx, `rhythmbox-client --no-start --print-playing-format "%tt|%ta|%at|%td|%te"`)
	if out == "" {
		return b.track
	}

	parts := strings.Split(out, "|")
	if len(parts) < 3 {
		b.logger.Warn().Str("output", out).Msg("Unexpected playing-format output")
		return b.track
	}

	b.track.SetTitle(strings.TrimSpace(parts[0]))
	b.track.SetArtist(strings.TrimSpace(parts[1]))
	b.track.SetAlbum(strings.TrimSpace(parts[2]))
	if len(parts) > 3 {
		if secs, ok := parseClock(parts[3]); ok {
			b.track.Duration = secs
		}
	}
	if len(parts) > 4 {
		if secs, ok := parseClock(parts[4]); ok {
			b.track.Position = secs
		}
	}
	return b.track
}

// IsPlaying returns the cached flag set by the last Play/Pause call.
func (b *Rhythmbox) IsPlaying(ctx context.Context) bool {
	return b.playing
}

// Play starts playback via the vendor toggle with an explicit boolean.
// No-op when the player is not running.
func (b *Rhythmbox) Play(ctx context.Context) {
	if !b.IsRunning(ctx) {
		return
	}
	b.runner.Output(ctx, b.vendorCall("playPause boolean:true"))
	b.playing = true
}

// Pause pauses playback. No-op when the player is not running.
func (b *Rhythmbox) Pause(ctx context.Context) {
	if !b.IsRunning(ctx) {
		return
	}
	b.runner.Output(ctx, b.vendorCall("playPause boolean:false"))
	b.playing = false
}

// Next skips to the next track. No-op when the player is not running.
func (b *Rhythmbox) Next(ctx context.Context) {
	if !b.IsRunning(ctx) {
		return
	}
	b.runner.Output(ctx, b.vendorCall("next"))
}

// Previous returns to the previous track. No-op when the player is not
// running.
func (b *Rhythmbox) Previous(ctx context.Context) {
	if !b.IsRunning(ctx) {
		return
	}
	b.runner.Output(ctx, b.vendorCall("previous"))
}

// SetVolume clamps v to [0, 1], caches it and forwards it via the vendor
// setVolume method.
func (b *Rhythmbox) SetVolume(ctx context.Context, v float64) {
	b.volume = player.ClampVolume(v)
	level := strconv.FormatFloat(b.volume, 'f', 2, 64)
	b.runner.Output(ctx, b.vendorCall("setVolume double:"+level))
}

// Volume re-queries the vendor getVolume method, falling back to the cache
// when the reply cannot be parsed.
func (b *Rhythmbox) Volume(ctx context.Context) float64 {
	out := b.runner.Output(ctx, b.vendorCall("getVolume"))
	if v, ok := doubleAfter(out); ok {
		b.volume = player.ClampVolume(v)
	}
	return b.volume
}

func (b *Rhythmbox) vendorCall(method string) string {
	return fmt.Sprintf("dbus-send --print-reply --dest=%s %s %s.%s",
		rhythmboxDest, rhythmboxPath, rhythmboxIfc, method)
}

// parseClock converts a "m:ss" or "h:mm:ss" clock string to seconds.
func parseClock(s string) (float64, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, false
		}
		total = total*60 + n
	}
	return float64(total), true
}

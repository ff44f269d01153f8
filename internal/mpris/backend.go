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
	busPrefix  = "org.mpris.MediaPlayer2."
	objectPath = "/org/mpris/MediaPlayer2"
	playerIfc  = "org.mpris.MediaPlayer2.Player"
)

// Backend controls any MPRIS-compliant player (Spotify, VLC, ...) by
// shelling out to dbus-send and scanning the textual replies. IsPlaying
// re-queries the live status on every read, which spawns a process; that
// cost is accepted for the accuracy it buys on this transport.
type Backend struct {
	name    string // display name, registry key
	dest    string // bus destination suffix, e.g. "spotify"
	runner  command.Runner
	probe   BusProbe
	logger  zerolog.Logger
	playing bool
	volume  float64
	track   *player.TrackInfo
}

// New creates an MPRIS backend for the player registered on the session bus
// as org.mpris.MediaPlayer2.<dest>. probe may be nil, in which case the
// liveness cascade stops after the window-manager check.
func New(name, dest string, runner command.Runner, probe BusProbe, logger zerolog.Logger) *Backend {
	return &Backend{
		name:   name,
		dest:   dest,
		runner: runner,
		probe:  probe,
		logger: logger.With().Str("component", "mpris").Str("player", name).Logger(),
		track:  player.NewTrackInfo(),
	}
}

// Name returns the player's display name.
func (b *Backend) Name() string { return b.name }

// IsRunning cascades through progressively broader liveness signals and
// returns true at the first positive one: direct process check, process-list
// grep, window-manager listing, then a session-bus name probe.
func (b *Backend) IsRunning(ctx context.Context) bool {
	if out := b.runner.Output(ctx, "pidof "+b.dest); out != "" {
		return true
	}
	if out := b.runner.Output(ctx, "ps -e | grep -i "+b.dest+" | grep -v grep"); out != "" {
		return true
	}
	if out := b.runner.Output(ctx, "wmctrl -l"); strings.Contains(strings.ToLower(out), b.dest) {
		return true
	}
	if b.probe != nil && b.probe.HasName(busPrefix+b.dest) {
		return true
	}
	return false
}

// CurrentTrack refreshes the owned TrackInfo from the Metadata and Position
// properties and returns it. Fields missing from the reply keep their prior
// values.
func (b *Backend) CurrentTrack(ctx context.Context) *player.TrackInfo {
	if out := b.runner.Output(ctx, b.getProperty("Metadata")); out != "" {
		ParseMetadata(out, b.track)
	}
	if out := b.runner.Output(ctx, b.getProperty("Position")); out != "" {
		if pos, ok := ParsePosition(out); ok {
			b.track.Position = pos
		}
	}
	return b.track
}

// IsPlaying queries the live PlaybackStatus property.
func (b *Backend) IsPlaying(ctx context.Context) bool {
	out := b.runner.Output(ctx, b.getProperty("PlaybackStatus"))
	b.playing = IsPlayingOutput(out)
	return b.playing
}

// Play starts playback. No-op when the player is not running.
func (b *Backend) Play(ctx context.Context) {
	if !b.IsRunning(ctx) {
		return
	}
	b.runner.Output(ctx, b.call("Play"))
	b.playing = true
}

// Pause pauses playback. No-op when the player is not running.
func (b *Backend) Pause(ctx context.Context) {
	if !b.IsRunning(ctx) {
		return
	}
	b.runner.Output(ctx, b.call("Pause"))
	b.playing = false
}

// Next skips to the next track. No-op when the player is not running.
func (b *Backend) Next(ctx context.Context) {
	if !b.IsRunning(ctx) {
		return
	}
	b.runner.Output(ctx, b.call("Next"))
}

// Previous returns to the previous track. No-op when the player is not
// running.
func (b *Backend) Previous(ctx context.Context) {
	if !b.IsRunning(ctx) {
		return
	}
	b.runner.Output(ctx, b.call("Previous"))
}

// SetVolume clamps v to [0, 1], caches it and forwards it over the bus.
func (b *Backend) SetVolume(ctx context.Context, v float64) {
	b.volume = player.ClampVolume(v)
	level := strconv.FormatFloat(b.volume, 'f', 2, 64)
	b.runner.Output(ctx, fmt.Sprintf(
		"dbus-send --print-reply --dest=%s%s %s org.freedesktop.DBus.Properties.Set string:%s string:Volume variant:double:%s",
		busPrefix, b.dest, objectPath, playerIfc, level))
}

// Volume re-queries the Volume property, updating the cache on a successful
// parse. The cached value is returned when the query or parse fails.
func (b *Backend) Volume(ctx context.Context) float64 {
	out := b.runner.Output(ctx, b.getProperty("Volume"))
	if v, ok := doubleAfter(out); ok {
		b.volume = player.ClampVolume(v)
	}
	return b.volume
}

func (b *Backend) getProperty(name string) string {
	return fmt.Sprintf(
		"dbus-send --print-reply --dest=%s%s %s org.freedesktop.DBus.Properties.Get string:%s string:%s",
		busPrefix, b.dest, objectPath, playerIfc, name)
}

func (b *Backend) call(method string) string {
	return fmt.Sprintf("dbus-send --print-reply --dest=%s%s %s %s.%s",
		busPrefix, b.dest, objectPath, playerIfc, method)
}

// doubleAfter parses the float that follows the next `double` value tag.
// Locale-invariant, same no-op-on-failure policy as the other value rules.
func doubleAfter(s string) (float64, bool) {
	idx := strings.Index(s, "double")
	if idx < 0 {
		return 0, false
	}
	rest := s[idx+len("double"):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

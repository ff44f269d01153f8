package wintitle

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"medley/internal/command"
	"medley/internal/player"
)

// Keymap holds the nircmd keystroke names for each transport action. The
// window is foregrounded before each keystroke so the input lands in the
// player rather than whatever currently has focus.
type Keymap struct {
	PlayPause string
	Next      string
	Previous  string
}

// MediaKeys drives players that honor the global media keys (Spotify).
var MediaKeys = Keymap{
	PlayPause: "media_play_pause",
	Next:      "media_next",
	Previous:  "media_prev",
}

// TransportKeys drives players bound to in-application shortcuts (iTunes).
var TransportKeys = Keymap{
	PlayPause: "spc",
	Next:      "ctrl+right",
	Previous:  "ctrl+left",
}

// LegacyTransportKeys drives Windows Media Player's shortcut set.
var LegacyTransportKeys = Keymap{
	PlayPause: "spc",
	Next:      "ctrl+f",
	Previous:  "ctrl+b",
}

// Backend is a window-title-scraping adapter for one Windows player. It has
// no volume primitive: SetVolume caches the level without any external
// action, and Volume returns the cache. IsPlaying likewise trusts the last
// locally-set flag, since the only live signal would be another title
// scrape.
type Backend struct {
	name    string // display name, registry key
	app     string // application name as it appears in window titles
	process string // executable image name for tasklist
	keys    Keymap
	runner  command.Runner
	logger  zerolog.Logger
	playing bool
	volume  float64
	track   *player.TrackInfo
}

// New creates a window-title backend.
func New(name, app, process string, keys Keymap, runner command.Runner, logger zerolog.Logger) *Backend {
	return &Backend{
		name:    name,
		app:     app,
		process: process,
		keys:    keys,
		runner:  runner,
		logger:  logger.With().Str("component", "wintitle").Str("player", name).Logger(),
		track:   player.NewTrackInfo(),
	}
}

// Name returns the player's display name.
func (b *Backend) Name() string { return b.name }

// IsRunning enumerates the process table for the player's image name.
func (b *Backend) IsRunning(ctx context.Context) bool {
	out := b.runner.Output(ctx, fmt.Sprintf(`tasklist /FI "IMAGENAME eq %s" /NH`, b.process))
	return strings.Contains(strings.ToLower(out), strings.ToLower(b.process))
}

// CurrentTrack scrapes the player's main window title, parses it into the
// owned TrackInfo and returns it. An empty title with the process alive
// marks the title as unretrievable rather than unknown.
func (b *Backend) CurrentTrack(ctx context.Context) *player.TrackInfo {
	title := b.windowTitle(ctx)
	if title == "" {
		b.track.SetTitle("")
		b.playing = false
		return b.track
	}
	b.playing = Parse(title, b.app, b.track)
	return b.track
}

// IsPlaying returns the cached flag; no live query exists on this transport
// short of another title scrape.
func (b *Backend) IsPlaying(ctx context.Context) bool {
	return b.playing
}

// Play sends the play/pause keystroke. No-op when the player is not running.
func (b *Backend) Play(ctx context.Context) {
	if !b.IsRunning(ctx) {
		return
	}
	b.sendKey(ctx, b.keys.PlayPause)
	b.playing = true
}

// Pause sends the play/pause keystroke. No-op when the player is not
// running.
func (b *Backend) Pause(ctx context.Context) {
	if !b.IsRunning(ctx) {
		return
	}
	b.sendKey(ctx, b.keys.PlayPause)
	b.playing = false
}

// Next sends the next-track keystroke. No-op when the player is not running.
func (b *Backend) Next(ctx context.Context) {
	if !b.IsRunning(ctx) {
		return
	}
	b.sendKey(ctx, b.keys.Next)
}

// Previous sends the previous-track keystroke. No-op when the player is not
// running.
func (b *Backend) Previous(ctx context.Context) {
	if !b.IsRunning(ctx) {
		return
	}
	b.sendKey(ctx, b.keys.Previous)
}

// SetVolume clamps and caches the level. Keystroke transports have no
// volume primitive, so no external command is issued.
func (b *Backend) SetVolume(ctx context.Context, v float64) {
	b.volume = player.ClampVolume(v)
}

// Volume returns the cached level.
func (b *Backend) Volume(ctx context.Context) float64 {
	return b.volume
}

func (b *Backend) windowTitle(ctx context.Context) string {
	proc := strings.TrimSuffix(b.process, ".exe")
	return b.runner.Output(ctx, fmt.Sprintf(
		`powershell -NoProfile -Command "(Get-Process -Name %s -ErrorAction SilentlyContinue | Where-Object {$_.MainWindowTitle}).MainWindowTitle"`,
		proc))
}

func (b *Backend) sendKey(ctx context.Context, key string) {
	b.runner.Output(ctx, fmt.Sprintf(
		`nircmd win activate process %s && nircmd sendkeypress %s`, b.process, key))
}

// Package poll drives periodic status refreshes for a front end. Polls are
// strictly sequential: a new tick is only acted on after the previous
// refresh has returned, so a slow external command delays polling instead
// of stacking concurrent probes. Control commands are funneled through the
// same goroutine, keeping the backend single-caller.
package poll

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"medley/internal/player"
)

// Update is a snapshot of one backend poll. Track is copied by value so the
// consumer never races the backend's in-place metadata refresh.
type Update struct {
	Track   player.TrackInfo
	Playing bool
	Volume  float64
}

// Command is a control action applied to the polled backend. Commands run
// on the poller's own goroutine between polls, never concurrently with one.
type Command func(ctx context.Context, backend player.Backend)

// Poller polls a backend at regular intervals.
type Poller struct {
	backend  player.Backend
	interval time.Duration
	logger   zerolog.Logger
}

// NewPoller creates a Poller for the given backend.
func NewPoller(backend player.Backend, interval time.Duration, logger zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = time.Second
	}
	return &Poller{
		backend:  backend,
		interval: interval,
		logger:   logger.With().Str("component", "poller").Logger(),
	}
}

// Run polls immediately, then on every tick, sending snapshots to updates.
// Commands received between ticks are executed and followed by an immediate
// re-poll, so the UI reflects a transport command without waiting out the
// interval. commands may be nil for poll-only callers. Blocks until the
// context is cancelled.
func (p *Poller) Run(ctx context.Context, updates chan<- Update, commands <-chan Command) error {
	p.logger.Info().
		Dur("interval", p.interval).
		Str("player", p.backend.Name()).
		Msg("Starting poller")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx, updates)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("Poller stopped")
			return ctx.Err()
		case cmd := <-commands:
			if cmd != nil {
				cmd(ctx, p.backend)
			}
			p.poll(ctx, updates)
		case <-ticker.C:
			p.poll(ctx, updates)
		}
	}
}

func (p *Poller) poll(ctx context.Context, updates chan<- Update) {
	track := p.backend.CurrentTrack(ctx)
	update := Update{
		Track:   *track,
		Playing: p.backend.IsPlaying(ctx),
		Volume:  p.backend.Volume(ctx),
	}

	select {
	case updates <- update:
		p.logger.Debug().
			Str("track", update.Track.Title).
			Str("artist", update.Track.Artist).
			Bool("playing", update.Playing).
			Msg("Poll update")
	case <-ctx.Done():
	}
}

package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"medley/internal/player"
	"medley/internal/poll"
	"medley/internal/textfmt"
)

const volumeStep = 0.05

// Config holds TUI configuration options
type Config struct {
	RefreshRate time.Duration // How often to poll the selected player
}

// DefaultConfig returns the default TUI configuration
func DefaultConfig() Config {
	return Config{
		RefreshRate: time.Second,
	}
}

// App is the TUI control panel: a list of discovered players on the left,
// live track info for the selected one on the right.
//
// Each selected backend is owned by exactly one poll.Poller goroutine. Key
// handlers never call backend methods directly; they enqueue commands that
// the poller executes between polls, so the backend only ever sees a single
// caller.
type App struct {
	app        *tview.Application
	players    *tview.List
	nowPlaying *tview.TextView
	progress   *tview.TextView
	status     *tview.TextView

	config   Config
	registry *player.Registry
	logger   zerolog.Logger

	// Mutex protects the state shared between the input handler and the
	// update-consuming goroutine.
	mu sync.Mutex

	// Current state (guarded by mu)
	backends []player.Backend
	selected player.Backend
	track    player.TrackInfo
	playing  bool
	volume   float64

	// Polling session for the selected backend (guarded by mu)
	commands   chan poll.Command
	pollCancel context.CancelFunc

	// Last-rendered content for change detection
	lastNowPlaying string
	lastProgress   string

	// Cached progress bar width to stabilize change detection.
	lastBarWidth int

	runCtx     context.Context
	cancelFunc context.CancelFunc
}

// New creates the TUI application over an initialized registry.
func New(registry *player.Registry, cfg Config, logger zerolog.Logger) *App {
	a := &App{
		app:      tview.NewApplication(),
		config:   cfg,
		registry: registry,
		logger:   logger.With().Str("component", "tui").Logger(),
	}
	a.setupUI()
	return a
}

// setupUI creates the UI layout
func (a *App) setupUI() {
	a.players = tview.NewList().ShowSecondaryText(false)
	a.players.SetBorder(true).
		SetTitle(" Players ").
		SetTitleAlign(tview.AlignLeft)
	a.players.SetChangedFunc(func(index int, _, _ string, _ rune) {
		a.mu.Lock()
		var backend player.Backend
		if index >= 0 && index < len(a.backends) {
			backend = a.backends[index]
		}
		a.mu.Unlock()
		if backend != nil {
			a.setSelected(backend)
		}
	})

	a.nowPlaying = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	a.nowPlaying.SetBorder(true).
		SetTitle(" Now Playing ").
		SetTitleAlign(tview.AlignLeft)

	a.progress = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	a.progress.SetBorder(true)

	a.status = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[gray]q:quit  space:play/pause  n:next  p:prev  +/-:volume  r:refresh[-]")

	right := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.nowPlaying, 0, 3, false).
		AddItem(a.progress, 3, 1, false)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(a.players, 30, 1, true).
		AddItem(right, 0, 2, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true).
		AddItem(a.status, 1, 1, false)

	a.app.SetInputCapture(a.handleKeyEvent)
	a.app.SetRoot(flex, true)
}

// handleKeyEvent processes keyboard input. Transport keys enqueue commands
// for the polling goroutine instead of touching the backend here.
func (a *App) handleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	switch event.Rune() {
	case 'q', 'Q':
		a.app.Stop()
		return nil
	case ' ':
		a.mu.Lock()
		playing := a.playing
		a.mu.Unlock()
		if playing {
			a.sendCommand(func(ctx context.Context, b player.Backend) { b.Pause(ctx) })
		} else {
			a.sendCommand(func(ctx context.Context, b player.Backend) { b.Play(ctx) })
		}
		return nil
	case 'n', 'N':
		a.sendCommand(func(ctx context.Context, b player.Backend) { b.Next(ctx) })
		return nil
	case 'p', 'P':
		a.sendCommand(func(ctx context.Context, b player.Backend) { b.Previous(ctx) })
		return nil
	case '+', '=':
		a.sendCommand(func(ctx context.Context, b player.Backend) {
			b.SetVolume(ctx, b.Volume(ctx)+volumeStep)
		})
		return nil
	case '-':
		a.sendCommand(func(ctx context.Context, b player.Backend) {
			b.SetVolume(ctx, b.Volume(ctx)-volumeStep)
		})
		return nil
	case 'r', 'R':
		ctx, cancel := a.commandContext()
		defer cancel()
		a.refreshPlayers(ctx, true)
		return nil
	}
	return event
}

// sendCommand enqueues a control action for the current polling session.
// Dropped when no player is selected or the poller is still busy with the
// previous command.
func (a *App) sendCommand(run func(context.Context, player.Backend)) {
	a.mu.Lock()
	ch := a.commands
	a.mu.Unlock()
	if ch == nil {
		return
	}

	cmd := func(ctx context.Context, b player.Backend) {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		run(ctx, b)
	}
	select {
	case ch <- cmd:
	default:
		a.logger.Debug().Msg("Command dropped, poller busy")
	}
}

func (a *App) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func (a *App) selectedBackend() player.Backend {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selected
}

// Run discovers players, starts the polling session and blocks until the
// user quits or the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.runCtx, a.cancelFunc = context.WithCancel(ctx)
	defer a.cancelFunc()

	discoverCtx, cancel := a.commandContext()
	a.refreshPlayers(discoverCtx, false)
	cancel()

	go func() {
		<-a.runCtx.Done()
		a.app.Stop()
	}()

	if err := a.app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// Stop stops the TUI application
func (a *App) Stop() {
	if a.cancelFunc != nil {
		a.cancelFunc()
	}
	a.app.Stop()
}

// refreshPlayers re-reads the registry snapshot and rebuilds the list.
// Selection continuity is attempted by name: if the previously selected
// player survives the refresh it stays selected, otherwise the first entry
// is picked.
func (a *App) refreshPlayers(ctx context.Context, force bool) {
	a.mu.Lock()
	prev := ""
	if a.selected != nil {
		prev = a.selected.Name()
	}
	a.mu.Unlock()

	backends := a.registry.AvailablePlayers(ctx, force)

	index := 0
	for i, b := range backends {
		if b.Name() == prev {
			index = i
			break
		}
	}

	a.mu.Lock()
	a.backends = backends
	a.mu.Unlock()

	a.players.Clear()
	for _, b := range backends {
		a.players.AddItem(b.Name(), "", 0, nil)
	}
	if len(backends) == 0 {
		a.players.AddItem("(no players running)", "", 0, nil)
		a.setSelected(nil)
		return
	}

	a.players.SetCurrentItem(index)
	a.setSelected(backends[index])
}

// setSelected switches the polling session to backend. The previous session
// is cancelled first, so at most one poller goroutine owns a backend at any
// time. A nil backend just tears the session down.
func (a *App) setSelected(backend player.Backend) {
	a.mu.Lock()
	if a.selected == backend {
		a.mu.Unlock()
		return
	}
	a.selected = backend
	if a.pollCancel != nil {
		a.pollCancel()
		a.pollCancel = nil
		a.commands = nil
	}
	if backend == nil || a.runCtx == nil {
		a.mu.Unlock()
		return
	}

	pollCtx, cancel := context.WithCancel(a.runCtx)
	commands := make(chan poll.Command, 1)
	a.pollCancel = cancel
	a.commands = commands
	a.mu.Unlock()

	updates := make(chan poll.Update)
	poller := poll.NewPoller(backend, a.config.RefreshRate, a.logger)
	go func() { _ = poller.Run(pollCtx, updates, commands) }()
	go func() {
		for {
			select {
			case <-pollCtx.Done():
				return
			case u := <-updates:
				a.apply(u)
			}
		}
	}()
}

// apply installs a poll snapshot and schedules a redraw.
func (a *App) apply(u poll.Update) {
	a.mu.Lock()
	a.track = u.Track
	a.playing = u.Playing
	a.volume = u.Volume
	a.mu.Unlock()

	a.refresh()
}

// refresh updates all UI components
func (a *App) refresh() {
	a.app.QueueUpdateDraw(func() {
		a.mu.Lock()
		defer a.mu.Unlock()

		a.updateNowPlaying()
		a.updateProgress()
	})
}

// updateNowPlaying updates the now playing panel
func (a *App) updateNowPlaying() {
	var text string

	if a.selected == nil {
		text = "\n\n[gray]No player selected[-]"
	} else if !a.track.HasTrackInfo() {
		text = "\n\n[gray]No track playing[-]"
	} else {
		var sb strings.Builder
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("[white::b]%s[-:-:-]\n", tview.Escape(a.track.Title)))
		sb.WriteString(fmt.Sprintf("[yellow]%s[-]\n", tview.Escape(a.track.Artist)))
		sb.WriteString(fmt.Sprintf("[gray]%s[-]", tview.Escape(a.track.Album)))

		stateIcon := "[yellow]⏸[-]" // Pause icon
		if a.playing {
			stateIcon = "[green]▶[-]" // Play triangle
		}
		sb.WriteString(fmt.Sprintf("\n\n%s  [gray]vol %3.0f%%[-]", stateIcon, a.volume*100))
		text = sb.String()
	}

	if text != a.lastNowPlaying {
		a.lastNowPlaying = text
		a.nowPlaying.SetText(text)
	}
}

// updateProgress updates the progress bar
func (a *App) updateProgress() {
	var text string

	if a.selected != nil && a.track.HasTrackInfo() {
		_, _, width, _ := a.progress.GetInnerRect()
		barWidth := width - 14 // Account for time display
		// Only update cached width when GetInnerRect returns a positive
		// value, avoiding flicker from transient zero-width during layout.
		if barWidth > 0 {
			a.lastBarWidth = barWidth
		}
		if a.lastBarWidth < 10 {
			a.lastBarWidth = 10
		}

		bar := buildProgressBar(a.track.Position, a.track.Duration, a.lastBarWidth)
		posStr := textfmt.FormatClock(a.track.Position)
		durStr := textfmt.FormatClock(a.track.Duration)
		text = fmt.Sprintf("%s %s %s", posStr, bar, durStr)
	}

	if text != a.lastProgress {
		a.lastProgress = text
		a.progress.SetText(text)
	}
}

// buildProgressBar creates a text-based progress bar
func buildProgressBar(position, duration float64, width int) string {
	if width <= 0 {
		return ""
	}
	if duration == 0 {
		return strings.Repeat("-", width)
	}

	progress := position / duration
	if progress > 1 {
		progress = 1
	}
	if progress < 0 {
		progress = 0
	}

	filled := int(progress * float64(width))
	empty := width - filled

	return "[green]" + strings.Repeat("█", filled) + "[-]" +
		"[gray]" + strings.Repeat("░", empty) + "[-]"
}

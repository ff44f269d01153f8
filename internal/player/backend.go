package player

import "context"

// Backend is a control adapter for one running music application. Every
// operation is synchronous and best-effort: failures are logged by the
// implementation and degrade to stale or default data, never to an error.
//
// The caching behavior of IsPlaying deliberately differs between backends.
// Backends with a cheap status query (MPRIS, AppleScript) re-query the live
// state on every read; backends where a query means scraping a window title
// or spawning an expensive probe trust the flag set by the last Play/Pause
// call instead.
type Backend interface {
	// Name returns the stable display name used as the registry key.
	Name() string

	// IsRunning probes whether the application is currently alive. The
	// probe mechanism is backend-specific.
	IsRunning(ctx context.Context) bool

	// CurrentTrack refreshes the owned TrackInfo from the application and
	// returns it. The same pointer is returned on every call.
	CurrentTrack(ctx context.Context) *TrackInfo

	// IsPlaying reports whether the application is playing, either by a
	// live query or from the cached flag (see type comment).
	IsPlaying(ctx context.Context) bool

	// Play, Pause, Next and Previous send the corresponding transport
	// command. Each is a silent no-op when the application is not running.
	Play(ctx context.Context)
	Pause(ctx context.Context)
	Next(ctx context.Context)
	Previous(ctx context.Context)

	// SetVolume clamps v to [0, 1], caches it, and forwards it when the
	// backend has a real volume primitive.
	SetVolume(ctx context.Context, v float64)

	// Volume returns the current volume in [0, 1], re-querying the
	// application when the backend supports it and the cache otherwise.
	Volume(ctx context.Context) float64
}

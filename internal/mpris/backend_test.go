package mpris

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// fakeRunner answers each command line with the output of the first rule
// whose substring matches, recording every call.
type fakeRunner struct {
	rules []fakeRule
	calls []string
}

type fakeRule struct {
	substr string
	out    string
}

func (f *fakeRunner) Output(ctx context.Context, commandLine string) string {
	f.calls = append(f.calls, commandLine)
	for _, r := range f.rules {
		if strings.Contains(commandLine, r.substr) {
			return r.out
		}
	}
	return ""
}

func (f *fakeRunner) called(substr string) bool {
	for _, c := range f.calls {
		if strings.Contains(c, substr) {
			return true
		}
	}
	return false
}

type fakeProbe struct {
	names map[string]bool
	asked []string
}

func (f *fakeProbe) HasName(name string) bool {
	f.asked = append(f.asked, name)
	return f.names[name]
}

func newTestBackend(runner *fakeRunner, probe BusProbe) *Backend {
	return New("Spotify", "spotify", runner, probe, zerolog.Nop())
}

func TestIsRunningCascade(t *testing.T) {
	tests := []struct {
		name      string
		rules     []fakeRule
		probe     *fakeProbe
		want      bool
		wantCalls int
	}{
		{
			name:      "pidof hit stops the cascade",
			rules:     []fakeRule{{"pidof", "1234"}},
			want:      true,
			wantCalls: 1,
		},
		{
			name:      "ps grep hit",
			rules:     []fakeRule{{"ps -e", "  1234 ?  00:01:02 spotify"}},
			want:      true,
			wantCalls: 2,
		},
		{
			name:      "wmctrl match is case-insensitive",
			rules:     []fakeRule{{"wmctrl", "0x04000003  0 host Spotify Premium"}},
			want:      true,
			wantCalls: 3,
		},
		{
			name:      "bus probe is the last resort",
			probe:     &fakeProbe{names: map[string]bool{"org.mpris.MediaPlayer2.spotify": true}},
			want:      true,
			wantCalls: 3,
		},
		{
			name:      "nothing found",
			probe:     &fakeProbe{},
			want:      false,
			wantCalls: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{rules: tt.rules}
			var probe BusProbe
			if tt.probe != nil {
				probe = tt.probe
			}
			b := newTestBackend(runner, probe)

			if got := b.IsRunning(context.Background()); got != tt.want {
				t.Errorf("IsRunning() = %v, want %v", got, tt.want)
			}
			if len(runner.calls) != tt.wantCalls {
				t.Errorf("issued %d commands, want %d: %v", len(runner.calls), tt.wantCalls, runner.calls)
			}
		})
	}
}

func TestIsRunningNilProbe(t *testing.T) {
	runner := &fakeRunner{}
	b := newTestBackend(runner, nil)

	if b.IsRunning(context.Background()) {
		t.Error("IsRunning() = true with no signals and no bus probe")
	}
}

func TestCurrentTrack(t *testing.T) {
	runner := &fakeRunner{rules: []fakeRule{
		{"string:Metadata", spotifyDump},
		{"string:Position", "   variant       int64 115000000\n"},
	}}
	b := newTestBackend(runner, nil)

	track := b.CurrentTrack(context.Background())

	if track.Title != "Phoenix" || track.Artist != "Netrum" {
		t.Errorf("track = %q by %q, want Phoenix by Netrum", track.Title, track.Artist)
	}
	if track.Duration != 245.0 {
		t.Errorf("Duration = %v, want 245.0", track.Duration)
	}
	if track.Position != 115.0 {
		t.Errorf("Position = %v, want 115.0", track.Position)
	}
}

func TestCurrentTrackKeepsStateAcrossEmptyReplies(t *testing.T) {
	runner := &fakeRunner{rules: []fakeRule{{"string:Metadata", spotifyDump}}}
	b := newTestBackend(runner, nil)

	ctx := context.Background()
	b.CurrentTrack(ctx)

	// Player gone: both queries now return nothing.
	runner.rules = nil
	track := b.CurrentTrack(ctx)

	if track.Title != "Phoenix" {
		t.Errorf("Title = %q after empty replies, want the prior value", track.Title)
	}
}

func TestIsPlaying(t *testing.T) {
	runner := &fakeRunner{rules: []fakeRule{
		{"string:PlaybackStatus", "   variant       string \"Playing\"\n"},
	}}
	b := newTestBackend(runner, nil)
	ctx := context.Background()

	if !b.IsPlaying(ctx) {
		t.Error("IsPlaying() = false for a Playing reply")
	}

	// The status is re-queried live, not served from the last answer.
	runner.rules = []fakeRule{
		{"string:PlaybackStatus", "   variant       string \"Paused\"\n"},
	}
	if b.IsPlaying(ctx) {
		t.Error("IsPlaying() = true after the player paused")
	}
}

func TestTransportGuardedByLiveness(t *testing.T) {
	runner := &fakeRunner{} // nothing running
	b := newTestBackend(runner, nil)
	ctx := context.Background()

	b.Play(ctx)
	b.Pause(ctx)
	b.Next(ctx)
	b.Previous(ctx)

	if runner.called("org.mpris.MediaPlayer2.Player.Play") {
		t.Error("Play was sent to a stopped player")
	}
	if runner.called("org.mpris.MediaPlayer2.Player.Next") {
		t.Error("Next was sent to a stopped player")
	}
}

func TestTransportCallsWhenRunning(t *testing.T) {
	runner := &fakeRunner{rules: []fakeRule{{"pidof", "1234"}}}
	b := newTestBackend(runner, nil)
	ctx := context.Background()

	b.Play(ctx)
	if !runner.called("org.mpris.MediaPlayer2.Player.Play") {
		t.Error("Play command not issued")
	}

	b.Next(ctx)
	if !runner.called("org.mpris.MediaPlayer2.Player.Next") {
		t.Error("Next command not issued")
	}
}

func TestSetVolume(t *testing.T) {
	runner := &fakeRunner{}
	b := newTestBackend(runner, nil)
	ctx := context.Background()

	b.SetVolume(ctx, 0.5)
	if !runner.called("variant:double:0.50") {
		t.Errorf("expected a variant:double:0.50 Set call, got %v", runner.calls)
	}

	// Out-of-range input is clamped before hitting the bus.
	b.SetVolume(ctx, 3.7)
	if !runner.called("variant:double:1.00") {
		t.Errorf("expected a clamped variant:double:1.00 Set call, got %v", runner.calls)
	}
}

func TestVolume(t *testing.T) {
	runner := &fakeRunner{rules: []fakeRule{
		{"string:Volume", "   variant       double 0.65\n"},
	}}
	b := newTestBackend(runner, nil)
	ctx := context.Background()

	if got := b.Volume(ctx); got != 0.65 {
		t.Errorf("Volume() = %v, want 0.65", got)
	}

	// Query failure falls back to the last known value.
	runner.rules = nil
	if got := b.Volume(ctx); got != 0.65 {
		t.Errorf("Volume() = %v after a failed query, want cached 0.65", got)
	}
}

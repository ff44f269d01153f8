package command

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestOutputTrimsStdout(t *testing.T) {
	r := NewShellRunner(zerolog.Nop())

	if got := r.Output(context.Background(), "echo hello"); got != "hello" {
		t.Errorf("Output() = %q, want %q", got, "hello")
	}
}

func TestOutputFailureReturnsEmpty(t *testing.T) {
	r := NewShellRunner(zerolog.Nop())

	if got := r.Output(context.Background(), "exit 3"); got != "" {
		t.Errorf("Output() = %q for a failing command, want empty", got)
	}
}

func TestOutputMissingBinaryReturnsEmpty(t *testing.T) {
	r := NewShellRunner(zerolog.Nop())

	if got := r.Output(context.Background(), "definitely-not-a-real-binary-zzz"); got != "" {
		t.Errorf("Output() = %q for a missing binary, want empty", got)
	}
}

func TestOutputHonorsContext(t *testing.T) {
	r := NewShellRunner(zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	got := r.Output(ctx, "sleep 5")
	if got != "" {
		t.Errorf("Output() = %q for a cancelled command, want empty", got)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("cancelled command was not killed promptly")
	}
}

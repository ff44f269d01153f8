// Package command provides the single I/O primitive the backends are built
// on: run one external command line, return its trimmed stdout.
package command

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

// Runner executes a command line and returns its captured standard output.
// Implementations never return an error: any spawn or I/O failure is logged
// and converted to an empty string, so callers treat "" as "no answer".
type Runner interface {
	Output(ctx context.Context, commandLine string) string
}

// ShellRunner runs command lines through the host platform's shell
// interpreter. It blocks until the spawned process exits; no timeout is
// imposed here, so a hung command stalls the caller unless the context
// bounds it.
type ShellRunner struct {
	logger zerolog.Logger
}

// NewShellRunner creates a ShellRunner.
func NewShellRunner(logger zerolog.Logger) *ShellRunner {
	return &ShellRunner{
		logger: logger.With().Str("component", "command").Logger(),
	}
}

// Output runs commandLine and returns its trimmed stdout, or "" on any
// failure. Stderr is captured for diagnostic logging only.
func (r *ShellRunner) Output(ctx context.Context, commandLine string) string {
	shell, flag := "sh", "-c"
	if runtime.GOOS == "windows" {
		shell, flag = "cmd", "/C"
	}

	cmd := exec.CommandContext(ctx, shell, flag, commandLine)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		r.logger.Warn().
			Err(err).
			Str("command", commandLine).
			Str("stderr", strings.TrimSpace(stderr.String())).
			Msg("Command failed")
		return ""
	}

	return strings.TrimSpace(stdout.String())
}

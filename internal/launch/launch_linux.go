//go:build linux

package launch

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// open resolves the lower-cased player name on PATH and starts it detached,
// so the application outlives the launching process.
func open(ctx context.Context, name string) error {
	binary := strings.ToLower(name)
	path, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Errorf("player %q not found on PATH: %w", binary, err)
	}

	cmd := exec.Command("setsid", path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %q: %w", binary, err)
	}
	// Detach: the launched process is not waited on.
	go func() { _ = cmd.Wait() }()
	return nil
}

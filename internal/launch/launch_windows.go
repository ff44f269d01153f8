//go:build windows

package launch

import (
	"context"
	"fmt"
	"os/exec"
)

// open delegates to the shell's start builtin, which searches the App Paths
// registry as well as PATH.
func open(ctx context.Context, name string) error {
	cmd := exec.CommandContext(ctx, "cmd", "/C", "start", "", name)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to launch %q: %w", name, err)
	}
	return nil
}

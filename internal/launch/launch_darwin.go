//go:build darwin

package launch

import (
	"context"
	"fmt"
	"os/exec"
)

// open activates the application through Launch Services, which resolves
// the name against the installed application bundles.
func open(ctx context.Context, name string) error {
	cmd := exec.CommandContext(ctx, "open", "-a", name)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to launch %q: %w", name, err)
	}
	return nil
}

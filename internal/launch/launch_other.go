//go:build !linux && !darwin && !windows

package launch

import (
	"context"
	"fmt"
	"runtime"
)

func open(ctx context.Context, name string) error {
	return fmt.Errorf("launching applications is not supported on %s", runtime.GOOS)
}

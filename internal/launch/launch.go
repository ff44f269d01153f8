// Package launch starts a player application by name. Unlike the control
// path, a launch failure is surfaced to the caller: it is the one operation
// the user explicitly asked for and expects feedback on.
package launch

import "context"

// Open attempts to start the named player application via OS-appropriate
// means and reports success or failure only.
func Open(ctx context.Context, name string) error {
	return open(ctx, name)
}

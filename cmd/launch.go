package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"medley/internal/launch"
)

// launchCmd represents the launch command
var launchCmd = &cobra.Command{
	Use:   "launch PLAYER",
	Short: "Start a music player application",
	Long: `Attempt to start the named player application via OS-appropriate
means (PATH lookup on Linux, Launch Services on macOS, the shell's start
builtin on Windows).

This is the one operation whose failure is reported directly: the control
commands degrade silently, but a launch was explicitly requested and the
user expects to hear whether it worked.`,
	Args: cobra.ExactArgs(1),
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	if err := launch.Open(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to launch %s: %w", args[0], err)
	}

	fmt.Printf("Launched %s\n", args[0])
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var playersRefresh bool

// playersCmd represents the players command
var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List running music players",
	Long: `Probe every registered player backend and list the ones whose
application is currently running.

The result is cached between invocations of long-lived hosts; use --refresh
to discard the cache and re-probe everything.`,
	RunE: runPlayers,
}

func init() {
	rootCmd.AddCommand(playersCmd)

	playersCmd.Flags().BoolVarP(&playersRefresh, "refresh", "r", false, "Discard the cached player list and re-probe")
}

func runPlayers(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	logger := newLogger()
	registry := newRegistry(logger)

	available := registry.AvailablePlayers(ctx, playersRefresh)
	if len(available) == 0 {
		fmt.Println("No running players found.")
		return nil
	}

	for _, backend := range available {
		state := "paused"
		if backend.IsPlaying(ctx) {
			state = "playing"
		}
		fmt.Printf("%-24s %s\n", backend.Name(), state)
	}
	return nil
}

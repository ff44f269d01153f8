package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"medley/internal/config"
)

var controlPlayer string

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Resume playback",
	Long:  `Resume playback on the selected player. If paused, starts playing the current track.`,
	RunE:  runPlay,
}

// pauseCmd represents the pause command
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause playback",
	Long:  `Pause playback on the selected player.`,
	RunE:  runPause,
}

// nextCmd represents the next command
var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Skip to next track",
	Long:  `Skip to the next track on the selected player.`,
	RunE:  runNext,
}

// prevCmd represents the prev command
var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Go to previous track",
	Long:  `Go to the previous track on the selected player.`,
	RunE:  runPrev,
}

// volumeCmd represents the volume command
var volumeCmd = &cobra.Command{
	Use:   "volume [0-100]",
	Short: "Get or set playback volume",
	Long: `Control the playback volume of the selected player.

Without arguments, prints the current volume. With a level between 0 and
100, sets the volume. Backends without a volume primitive (window-title
players on Windows) remember the level but cannot apply it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVolume,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, pauseCmd, nextCmd, prevCmd, volumeCmd} {
		c.Flags().StringVarP(&controlPlayer, "player", "p", "", "Player to control (default: configured default, then first discovered)")
		rootCmd.AddCommand(c)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	logger := newLogger()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	backend, err := resolveBackend(ctx, newRegistry(logger), cfg, controlPlayer, logger)
	if err != nil {
		return err
	}
	backend.Play(ctx)
	return nil
}

func runPause(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	logger := newLogger()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	backend, err := resolveBackend(ctx, newRegistry(logger), cfg, controlPlayer, logger)
	if err != nil {
		return err
	}
	backend.Pause(ctx)
	return nil
}

func runNext(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	logger := newLogger()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	backend, err := resolveBackend(ctx, newRegistry(logger), cfg, controlPlayer, logger)
	if err != nil {
		return err
	}
	backend.Next(ctx)
	return nil
}

func runPrev(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	logger := newLogger()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	backend, err := resolveBackend(ctx, newRegistry(logger), cfg, controlPlayer, logger)
	if err != nil {
		return err
	}
	backend.Previous(ctx)
	return nil
}

func runVolume(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	logger := newLogger()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	backend, err := resolveBackend(ctx, newRegistry(logger), cfg, controlPlayer, logger)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Printf("%.0f\n", backend.Volume(ctx)*100)
		return nil
	}

	level, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid volume level: %s (must be a number 0-100)", args[0])
	}
	backend.SetVolume(ctx, level/100)
	return nil
}

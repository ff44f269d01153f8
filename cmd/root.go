/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"medley/internal/backends"
	"medley/internal/command"
	"medley/internal/config"
	"medley/internal/fallback"
	"medley/internal/player"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var logLevel string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "medley",
	Short: "Control surface for locally running music players",
	Long: `medley discovers locally running music players and controls them
through whatever mechanism each platform offers: MPRIS over D-Bus on Linux,
AppleScript on macOS, window titles and synthetic keystrokes on Windows.

It provides commands to list running players, send transport commands
(play, pause, next, previous, volume), print the current track for status
bars, launch a player, and drive everything from an interactive panel.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

// newLogger creates the process logger from the --log-level flag.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// newRegistry builds a registry initialized with this host's backend set.
func newRegistry(logger zerolog.Logger) *player.Registry {
	runner := command.NewShellRunner(logger)
	registry := player.NewRegistry(logger)
	registry.Initialize(backends.Defaults(runner, logger))
	return registry
}

// commandContext bounds a single CLI invocation. The core imposes no
// timeout of its own; this keeps a hung player command from wedging the
// terminal forever.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// resolveBackend picks the backend a control command should talk to:
// an explicitly named player first (falling back to the generic manual
// backend for names the registry does not know), then the configured
// default, then the first discovered player.
func resolveBackend(ctx context.Context, registry *player.Registry, cfg *config.Config, name string, logger zerolog.Logger) (player.Backend, error) {
	if name == "" {
		name = cfg.DefaultPlayer
	}

	if name != "" {
		if backend, ok := registry.CreatePlayer(name); ok {
			return backend, nil
		}
		logger.Info().Str("player", name).Msg("Player not registered, using manual fallback")
		return fallback.New(name, command.NewShellRunner(logger), logger), nil
	}

	available := registry.AvailablePlayers(ctx, false)
	if len(available) == 0 {
		return nil, fmt.Errorf("no running players found")
	}
	return available[0], nil
}

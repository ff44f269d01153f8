package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"medley/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	Long: `Print the active configuration values and where they are loaded from.

Values come from ` + "`config.yaml`" + ` in the config directory, overridden by
MEDLEY_* environment variables.`,
	RunE: runConfig,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the active configuration to the config file",
	Long: `Write the active configuration (defaults merged with any existing file
and environment overrides) to config.yaml, creating the config directory if
needed. Useful as a starting point for editing.`,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Printf("Config file:       %s\n", filepath.Join(config.GetConfigDir(), "config.yaml"))
	fmt.Printf("output_format:     %s\n", cfg.OutputFormat)
	fmt.Printf("output_width:      %d\n", cfg.OutputWidth)
	fmt.Printf("marquee_enabled:   %t\n", cfg.MarqueeEnabled)
	fmt.Printf("marquee_speed:     %d\n", cfg.MarqueeSpeed)
	fmt.Printf("marquee_separator: %q\n", cfg.MarqueeSeparator)
	fmt.Printf("poll_interval:     %d\n", cfg.PollInterval)
	fmt.Printf("default_player:    %s\n", cfg.DefaultPlayer)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Wrote %s\n", filepath.Join(config.GetConfigDir(), "config.yaml"))
	return nil
}

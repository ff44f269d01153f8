package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"medley/internal/config"
	"medley/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive control panel",
	Long: `Open an interactive terminal panel listing the running players,
with live track info and transport controls for the selected one.

Key bindings:
  q       quit
  space   play/pause
  n / p   next / previous track
  + / -   volume up / down
  r       re-probe players`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	tuiCfg := tui.DefaultConfig()
	if cfg.PollInterval > 0 {
		tuiCfg.RefreshRate = time.Duration(cfg.PollInterval) * time.Second
	}

	app := tui.New(newRegistry(logger), tuiCfg, logger)
	return app.Run(context.Background())
}

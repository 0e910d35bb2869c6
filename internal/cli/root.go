// Package cli implements the tickerx command line.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/comalice/tickerx/internal/config"
	"github.com/comalice/tickerx/internal/logging"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg    config.Config
	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the tickerx CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tickerx",
		Short: "Per-frame tween scheduler",
		Long:  "tickerx runs tween schedules headless or behind a realtime frame loop.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(flagConfig)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("log-level") {
				loaded.Log.Level = flagLogLevel
			}
			if flags.Changed("log-format") {
				loaded.Log.Format = flagLogFormat
			}
			if flagDebug {
				loaded.Log.Level = "debug"
			}
			if err := loaded.Validate(); err != nil {
				return err
			}

			cfg = loaded
			logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newSimulateCmd(),
		newServeCmd(),
		newEasingsCmd(),
	)

	return root
}

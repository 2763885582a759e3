package main

import (
	"log/slog"
	"os"

	"github.com/matt-g-everett/tweentx/logging"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tweentx",
		Short: "Animate a value between two endpoints and stream it to an LED strip",
		Long: `tweentx plays forward and backward transitions of a single value and
renders it as a fill bar on an LED strip over MQTT.

Examples:
  # Run against the broker and HTTP address in config.yaml
  tweentx serve --config config.yaml

  # Watch a transition in the terminal, reversing it after 150ms
  tweentx play --duration 400ms --backward-after 150ms

  # Print an easing curve
  tweentx curve --kind cubic --easing ease-out
`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text|json)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(playCmd())
	rootCmd.AddCommand(curveCmd())
	return rootCmd
}

// newLogger builds a logger from the global flags, falling back to the
// given defaults.
func newLogger(defaultLevel, defaultFormat string) *slog.Logger {
	level, format := defaultLevel, defaultFormat
	if logLevel != "" {
		level = logLevel
	}
	if logFormat != "" {
		format = logFormat
	}
	return logging.NewLogger(logging.ParseLevel(level), format)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

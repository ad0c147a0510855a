package commands

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "stir",
	Short: "CME STIR futures settlement model",
	Long: `stir prices CME short-term interest rate futures (SR3, SR1, ZQ):
reconstructing realized final settlements from NY Fed fixings, and
projecting expected settlements from a policy-rate scenario.

Examples:
  stir fetch sofr --start 2024-12-01
  stir realized sr1 --asof 2026-01-15
  stir expected sr3`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; env vars win either way.
		_ = godotenv.Load()

		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(level).
			With().Timestamp().Logger()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

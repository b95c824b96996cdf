// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javajoker/natura-backend/internal/config"
	"github.com/javajoker/natura-backend/internal/i18n"
	"github.com/javajoker/natura-backend/internal/logger"
)

var (
	// Used for flags
	logLevel  string
	logFormat string

	cfg *config.Config
)

// rootCmd starts the server when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "natura",
	Short: "Order management backend",
	Long: `Natura keeps a product catalog, customers and their orders,
and serves them over a JSON HTTP API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// Flags win over LOG_LEVEL / LOG_FORMAT.
		level, format := cfg.Log.Level, cfg.Log.Format
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			format = logFormat
		}
		if err := logger.Setup(level, format); err != nil {
			return err
		}

		if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
			return fmt.Errorf("failed to initialize i18n: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (json, text)")
}

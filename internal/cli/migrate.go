// internal/cli/migrate.go
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javajoker/natura-backend/internal/database"
)

var migrateScript string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Runs the schema migrations against the configured database and, with
--script, executes a SQL script afterwards. Useful for CI/CD pipelines or
initial setup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(migrateScript)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().StringVar(&migrateScript, "script", "", "SQL script to execute after the migrations")
}

func runMigrate(script string) error {
	logrus.Info("Connecting to database...")
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	if script != "" {
		logrus.WithField("script", script).Info("Executing SQL script")
		if err := database.ExecScript(db, script); err != nil {
			return err
		}
	}
	return nil
}

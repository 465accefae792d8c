package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viltrumflow/taskflow-api/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back the SQL migrations (postgres)",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.Up), string(database.Down)},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.DBDriver != "postgres" {
			return fmt.Errorf("migrate supports the postgres driver only, got %q", cfg.DBDriver)
		}
		return database.RunMigrations(cfg.PostgresURL(), cfg.MigrationDir, database.Direction(args[0]))
	},
}

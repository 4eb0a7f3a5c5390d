package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talx-hub/likeboard/internal/service"
	"github.com/talx-hub/likeboard/internal/service/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMigrate(cmd, false)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back all migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMigrate(cmd, true)
	},
}

func runMigrate(cmd *cobra.Command, down bool) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err = cfg.ValidateDatabase(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return service.Migrate(cmd.Context(), cfg.DatabaseURL, down, log)
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	config.RegisterDatabaseFlags(migrateCmd.PersistentFlags())
}

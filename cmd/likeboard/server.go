package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talx-hub/likeboard/internal/service"
	"github.com/talx-hub/likeboard/internal/service/config"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the HTTP server",
	Long: `Starts the HTTP server. Pending migrations are applied on start.

Settings come from <APP_ENV>.env, then the environment, then flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err = cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		return service.RunServer(cmd.Context(), cfg, log)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	config.RegisterServerFlags(serverCmd.Flags())
}

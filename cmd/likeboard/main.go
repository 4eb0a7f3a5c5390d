package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/talx-hub/likeboard/internal/model"
	"github.com/talx-hub/likeboard/internal/service/config"
	"github.com/talx-hub/likeboard/internal/utils/logger"
)

var rootCmd = &cobra.Command{
	Use:          "likeboard",
	Short:        "User accounts, likes and a most-liked leaderboard over HTTP",
	SilenceUsage: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Default().LogAttrs(ctx,
			slog.LevelError,
			"command failed",
			slog.Any(model.KeyLoggerError, err),
		)
		stop()
		os.Exit(1)
	}
}

// loadConfig builds the config from the env file, the environment and the
// flags of cmd, in that order of increasing priority.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	bootLog := logger.New(slog.LevelInfo)
	cfg, err := config.NewBuilder(bootLog).
		FromDotEnv().
		FromEnv().
		FromFlags(cmd.Flags()).
		GetConfig()
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(log)
	return cfg, log, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/college-admin-api/pkg/config"
	"github.com/noah-isme/college-admin-api/pkg/logger"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

var (
	cfg  *config.Config
	logr *zap.Logger
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "college-api",
		Short: "College administration API",
		Long: `college-api serves the college administration REST API backed by
PostgreSQL and provisions its schema.

Configuration is read from a .env file in the working directory when present,
then from environment variables (DB_HOST, DB_PORT, PORT, ENABLE_STATS_CACHE, ...).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded

			l, err := logger.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
			logr = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logr != nil {
				_ = logr.Sync()
			}
		},
	}

	rootCmd.AddCommand(getServeCmd())
	rootCmd.AddCommand(getSetupCmd())
	return rootCmd
}

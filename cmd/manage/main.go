package main

import (
	"log/slog"
	"os"

	"github.com/linskybing/clientdesk/internal/config"
	"github.com/linskybing/clientdesk/pkg/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:           "manage",
		Short:         "Administrative commands for the clientdesk service",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(loaded.LogLevel)
			slog.Debug("configuration loaded", "db_host", loaded.DbHost, "db_name", loaded.DbName)
			cfg = loaded
			return nil
		},
	}

	getConfig := func() *config.Config { return cfg }
	root.AddCommand(newMigrateCmd(getConfig), newUsersCmd(getConfig))
	return root
}

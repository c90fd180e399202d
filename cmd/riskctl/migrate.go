package main

import (
	"github.com/spf13/cobra"

	"docrisk/internal/config"
	"docrisk/internal/database"
	"docrisk/internal/database/migration"
	"docrisk/internal/logging"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema (DB_* environment variables)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}
			loc, _ := cfg.Location()
			log := logging.New(cmd.OutOrStdout(), loc)
			db, err := database.NewPostgres(cmd.Context(), cfg.Database, log)
			if err != nil {
				return err
			}
			defer db.Close()
			return migration.EnsureMigrated(cmd.Context(), db, log, cfg.Database.Host)
		},
	}
}

package cli

import (
	"fmt"

	"github.com/SscSPs/camp_ledger_app/internal/platform/config"
	"github.com/SscSPs/camp_ledger_app/internal/platform/migrations"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending Postgres migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.StorageBackend != config.BackendPostgres {
			return fmt.Errorf("migrate only applies to the postgres backend (STORAGE_BACKEND=%s)", cfg.StorageBackend)
		}
		return migrations.Up(cfg.DatabaseURL, cfg.MigrationsPath, logger)
	},
}

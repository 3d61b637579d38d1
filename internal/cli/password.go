package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/SscSPs/camp_ledger_app/internal/core/services"
	"github.com/SscSPs/camp_ledger_app/internal/platform/config"
	"github.com/SscSPs/camp_ledger_app/internal/platform/migrations"
	"github.com/SscSPs/camp_ledger_app/internal/repositories"
	"github.com/spf13/cobra"
)

var newPassword string

var setPasswordCmd = &cobra.Command{
	Use:   "set-password",
	Short: "Store a new shared login password",
	Long: `Hashes and stores the shared password used by POST /api/v1/auth/login.

Examples:
  camp_backend set-password --password 'new secret'
  echo 'new secret' | camp_backend set-password`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password := newPassword
		if password == "" {
			fmt.Print("New password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}

		if cfg.StorageBackend == config.BackendPostgres {
			if err := migrations.Up(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
				return err
			}
		}

		repos, err := repositories.NewProvider(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer repos.Close()

		if err := services.NewAuthService(cfg, repos.UserRepo).SetPassword(cmd.Context(), password); err != nil {
			return err
		}
		fmt.Println("Password updated.")
		return nil
	},
}

func init() {
	setPasswordCmd.Flags().StringVar(&newPassword, "password", "", "new password (prompted when omitted)")
}

// cmd/server/create_admin.go
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/adapters/repository"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/application"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

var adminFlags struct {
	email    string
	name     string
	password string
	role     string
}

// createAdminCmd is the only way to create the first super admin.
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create a staff account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminFlags.password == "" {
			adminFlags.password = os.Getenv("ADMIN_PASSWORD")
		}
		if adminFlags.password == "" {
			return errors.New("--password or ADMIN_PASSWORD is required")
		}

		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		repo := repository.NewPostgresRepository(db)
		svc := application.NewAuthService(repo, nil, logger)
		admin, err := svc.CreateAdmin(cmd.Context(), adminFlags.email, adminFlags.name, adminFlags.password, domain.Role(adminFlags.role))
		if err != nil {
			return err
		}
		logger.Info("admin created", zap.String("admin_id", admin.ID), zap.String("email", admin.Email), zap.String("role", string(admin.Role)))
		return nil
	},
}

func init() {
	f := createAdminCmd.Flags()
	f.StringVar(&adminFlags.email, "email", "", "login email")
	f.StringVar(&adminFlags.name, "name", "", "display name")
	f.StringVar(&adminFlags.password, "password", "", "initial password (or ADMIN_PASSWORD)")
	f.StringVar(&adminFlags.role, "role", string(domain.RoleAdmin), "admin or super_admin")
	_ = createAdminCmd.MarkFlagRequired("email")
}

// cmd/server/migrate.go
package main

import (
	"github.com/spf13/cobra"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/adapters/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schema and seed default platform settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := repository.NewPostgresRepository(db).Migrate(cmd.Context()); err != nil {
			return err
		}
		logger.Info("schema migrated")
		return nil
	},
}

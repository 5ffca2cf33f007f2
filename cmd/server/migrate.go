// cmd/server/migrate.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javajoker/cleantheory-backend/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the products table and load the bundled catalog into it",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().Bool("skip-seed", false, "Only migrate the schema")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		return err
	}

	if skip, _ := cmd.Flags().GetBool("skip-seed"); skip {
		return nil
	}

	n, err := database.SeedCatalog(cmd.Context(), db)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d products\n", n)
	return nil
}

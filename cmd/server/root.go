// cmd/server/root.go
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javajoker/cleantheory-backend/internal/catalog"
	"github.com/javajoker/cleantheory-backend/internal/config"
	"github.com/javajoker/cleantheory-backend/internal/database"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "cleantheory",
	Short:         "Clean Theory storefront backend",
	Long:          "HTTP API and maintenance commands for the Clean Theory skincare storefront.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded

		if source, _ := cmd.Flags().GetString("catalog-source"); source != "" {
			cfg.Catalog.Source = strings.ToLower(source)
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		setupLogging(cfg.Log)
		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Command failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("catalog-source", "", "Catalog source: embedded or postgres (default from $CATALOG_SOURCE)")
}

func setupLogging(lc config.LogConfig) {
	level, err := logrus.ParseLevel(lc.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if lc.Format == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// loadCatalog reads the catalog from the configured source. A database
// connection is only held while the rows are read.
func loadCatalog(ctx context.Context) (*catalog.Store, error) {
	if cfg.Catalog.Source != config.CatalogSourcePostgres {
		return catalog.LoadEmbedded()
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return nil, err
	}
	defer database.Close(db)

	return catalog.NewRepository(db).Load(ctx)
}

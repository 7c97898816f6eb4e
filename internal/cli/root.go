// Package cli implements the thermosim command tree.
package cli

import (
	"context"
	"delivery-thermal-service/internal/adapters/catalog"
	"delivery-thermal-service/internal/adapters/repositories"
	"delivery-thermal-service/internal/config"
	"delivery-thermal-service/internal/platform/db"
	"delivery-thermal-service/internal/ports"
	"fmt"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

type rootOptions struct {
	seedPath string
	logLevel string
}

// NewRootCmd builds the thermosim command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "thermosim",
		Short: "Simulate how food and drinks cool down or warm up during delivery",
		Long: `thermosim predicts the temperature of an item at the end of a delivery
from its packaging, transport and distance, and scores the delivery 1-10.

The built-in catalog is used unless --seed points at a YAML or JSON catalog.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			config.InitLogger(opts.logLevel, "console", cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.seedPath, "seed", "", "catalog seed file (.yaml, .yml or .json)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		NewRunCmd(opts),
		NewCatalogCmd(opts),
		NewProfileCmd(opts),
	)

	return cmd
}

// openCatalog returns the built-in catalog, or one loaded from the seed file
// into an in-memory sqlite database. The returned cleanup must be called.
func (o *rootOptions) openCatalog(ctx context.Context) (ports.Catalog, func(), error) {
	if o.seedPath == "" {
		return catalog.Default(), func() {}, nil
	}

	seed, err := repositories.LoadSeedFile(o.seedPath)
	if err != nil {
		return nil, nil, err
	}

	conn, err := db.OpenSqlite(":memory:")
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = conn.Close() }

	if err := repositories.InitSchema(ctx, conn); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}
	if err := repositories.SeedCatalog(ctx, conn, db.DriverSqlite, seed); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}

	return repositories.NewSQLCatalogRepository(conn, db.DriverSqlite), cleanup, nil
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todolists-api/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/todolists-api/internal/platform/config"
)

func runMigrate(cmd *cobra.Command, opts *rootOptions) error {
	cfg, logger, err := bootstrap(cmd, opts)
	if err != nil {
		return err
	}

	if cfg.Storage.Driver != config.DriverSQLite {
		return fmt.Errorf("migrate requires the %q storage driver, profile uses %q",
			config.DriverSQLite, cfg.Storage.Driver)
	}

	store, err := sqlite.Connect(cfg.Storage.Path, cfg.Storage.BusyTimeout)
	if err != nil {
		return fmt.Errorf("opening sqlite store: %w", err)
	}
	defer store.Close()

	applied, err := store.Migrate(cmd.Context())
	if err != nil {
		return fmt.Errorf("migrating %s: %w", store.Path(), err)
	}

	logger.Info("migrations applied",
		slog.String("path", store.Path()),
		slog.Int("applied", applied),
	)
	cmd.Printf("applied %d migration(s) to %s\n", applied, store.Path())
	return nil
}

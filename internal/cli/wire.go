package cli

import (
	"fmt"
	"log/slog"

	"github.com/opsmith/opsync/internal/airtable"
	"github.com/opsmith/opsync/internal/config"
	"github.com/opsmith/opsync/internal/database"
	"github.com/opsmith/opsync/internal/dispatch"
	"github.com/opsmith/opsync/internal/drive"
	"github.com/opsmith/opsync/internal/printer"
	"github.com/opsmith/opsync/internal/repository"
	"github.com/opsmith/opsync/internal/service"
)

// buildDispatcher assembles the full runner: config, database with
// migrations applied, API clients, stores and the sync service. The
// returned cleanup closes the database connection.
func buildDispatcher() (*dispatch.Dispatcher, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			if closeErr := sqlDB.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}
	}

	if err := database.RunMigrations(db); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	companies := repository.NewCompanyRepository(db)

	svc := service.NewSyncService(
		airtable.NewClient(),
		drive.NewClient(cfg.GoogleClientID, cfg.GoogleClientSecret),
		printer.NewClient(),
		companies,
		service.Stores{
			Assets:    repository.NewAssetItemStore(db),
			Swag:      repository.NewSwagItemStore(db),
			Repos:     repository.NewRepoStore(db),
			Shipments: repository.NewShipmentStore(db),
			Expenses:  repository.NewExpenseStore(db),
			Trips:     repository.NewTripStore(db),
		},
		cfg.SharedDriveName,
		cfg.AssetsFolderName,
		cfg.SwagFolderName,
	)

	return dispatch.New(companies, slog.Default(), jobSpecs(svc)), cleanup, nil
}

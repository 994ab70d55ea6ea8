package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opsmith/opsync/internal/airtable"
	"github.com/opsmith/opsync/internal/models"
)

// Record-store table names, one per synced collection.
const (
	AssetItemsTable        = "Asset Items"
	SwagItemsTable         = "Swag Items"
	ReposTable             = "Repos"
	InboundShipmentsTable  = "Inbound Shipments"
	OutboundShipmentsTable = "Outbound Shipments"
	ExpensesTable          = "Expenses"
	TripsTable             = "Trips"
)

var errEmptyRecord = errors.New("record has no fields")

// SyncAssetItems refreshes the asset inventory for one company: every
// asset record is normalized, gets barcode artifacts, is upserted, and
// its label is sent to the company printer.
func (s *SyncService) SyncAssetItems(ctx context.Context, log *slog.Logger, company models.Company) error {
	target, err := s.resolveUploadTarget(ctx, log, company, s.assetsFolder)
	if err != nil {
		return err
	}

	return runSweep(ctx, log, s.source, s.stores.Assets, company, sweep[*models.AssetItem]{
		baseID:    company.AirtableBaseAssets,
		table:     AssetItemsTable,
		normalize: normalizeAssetItem,
		expand: func(ctx context.Context, item *models.AssetItem) error {
			return s.expandBarcodeArtifacts(ctx, log, company, target, item)
		},
		after: func(ctx context.Context, item *models.AssetItem) error {
			return s.DispatchLabel(ctx, company, item)
		},
	})
}

// SyncSwagItems refreshes the swag inventory for one company.
func (s *SyncService) SyncSwagItems(ctx context.Context, log *slog.Logger, company models.Company) error {
	target, err := s.resolveUploadTarget(ctx, log, company, s.swagFolder)
	if err != nil {
		return err
	}

	return runSweep(ctx, log, s.source, s.stores.Swag, company, sweep[*models.SwagItem]{
		baseID:    company.AirtableBaseSwag,
		table:     SwagItemsTable,
		normalize: normalizeSwagItem,
		expand: func(ctx context.Context, item *models.SwagItem) error {
			return s.expandBarcodeArtifacts(ctx, log, company, target, item)
		},
	})
}

// SyncRepos refreshes the tracked source repositories for one company.
func (s *SyncService) SyncRepos(ctx context.Context, log *slog.Logger, company models.Company) error {
	return runSweep(ctx, log, s.source, s.stores.Repos, company, sweep[*models.Repo]{
		baseID:    company.AirtableBaseOperations,
		table:     ReposTable,
		normalize: normalizeRepo,
	})
}

// SyncShipments refreshes inbound then outbound shipments for one
// company. The two collections are separate sub-steps of the same job.
func (s *SyncService) SyncShipments(ctx context.Context, log *slog.Logger, company models.Company) error {
	if err := runSweep(ctx, log, s.source, s.stores.Shipments, company, sweep[*models.Shipment]{
		baseID:    company.AirtableBaseOperations,
		table:     InboundShipmentsTable,
		normalize: normalizeShipment(models.ShipmentInbound),
	}); err != nil {
		return err
	}

	return runSweep(ctx, log, s.source, s.stores.Shipments, company, sweep[*models.Shipment]{
		baseID:    company.AirtableBaseOperations,
		table:     OutboundShipmentsTable,
		normalize: normalizeShipment(models.ShipmentOutbound),
	})
}

// SyncExpenses refreshes the finance ledger for one company.
func (s *SyncService) SyncExpenses(ctx context.Context, log *slog.Logger, company models.Company) error {
	return runSweep(ctx, log, s.source, s.stores.Expenses, company, sweep[*models.Expense]{
		baseID:    company.AirtableBaseFinance,
		table:     ExpensesTable,
		normalize: normalizeExpense,
	})
}

// SyncTrips refreshes booked travel for one company.
func (s *SyncService) SyncTrips(ctx context.Context, log *slog.Logger, company models.Company) error {
	return runSweep(ctx, log, s.source, s.stores.Trips, company, sweep[*models.Trip]{
		baseID:    company.AirtableBaseFinance,
		table:     TripsTable,
		normalize: normalizeTrip,
	})
}

func normalizeAssetItem(rec airtable.Record) (*models.AssetItem, error) {
	if rec.Fields == nil {
		return nil, errEmptyRecord
	}
	return &models.AssetItem{
		ID:            uuid.New().String(),
		Name:          rec.String("Name"),
		Type:          rec.String("Type"),
		Status:        rec.String("Status"),
		Manufacturer:  rec.String("Manufacturer"),
		ModelNumber:   rec.String("Model Number"),
		SerialNumber:  rec.String("Serial Number"),
		PurchasePrice: rec.Float("Purchase Price"),
		CurrentUser:   rec.String("Current Employee Borrowing"),
		Qualities:     models.StringList(rec.Strings("Qualities")),
		Notes:         rec.String("Notes"),
	}, nil
}

func normalizeSwagItem(rec airtable.Record) (*models.SwagItem, error) {
	if rec.Fields == nil {
		return nil, errEmptyRecord
	}
	return &models.SwagItem{
		ID:       uuid.New().String(),
		Name:     rec.String("Name"),
		Type:     rec.String("Type"),
		Status:   rec.String("Status"),
		Size:     rec.String("Size"),
		Color:    rec.String("Color"),
		Quantity: rec.Int("Quantity"),
	}, nil
}

func normalizeRepo(rec airtable.Record) (*models.Repo, error) {
	if rec.Fields == nil {
		return nil, errEmptyRecord
	}
	return &models.Repo{
		ID:            uuid.New().String(),
		Name:          rec.String("Name"),
		Description:   rec.String("Description"),
		Language:      rec.String("Language"),
		DefaultBranch: rec.String("Default Branch"),
		Stars:         rec.Int("Stars"),
		Archived:      rec.Bool("Archived"),
	}, nil
}

func normalizeShipment(direction string) func(rec airtable.Record) (*models.Shipment, error) {
	return func(rec airtable.Record) (*models.Shipment, error) {
		if rec.Fields == nil {
			return nil, errEmptyRecord
		}
		return &models.Shipment{
			ID:          uuid.New().String(),
			Name:        rec.String("Tracking Number"),
			Direction:   direction,
			Carrier:     rec.String("Carrier"),
			Status:      rec.String("Status"),
			Origin:      rec.String("Origin"),
			Destination: rec.String("Destination"),
			ETA:         rec.Time("ETA"),
		}, nil
	}
}

func normalizeExpense(rec airtable.Record) (*models.Expense, error) {
	if rec.Fields == nil {
		return nil, errEmptyRecord
	}
	return &models.Expense{
		ID:         uuid.New().String(),
		Name:       rec.String("Statement Reference"),
		Merchant:   rec.String("Merchant"),
		Amount:     rec.Float("Amount"),
		Currency:   rec.String("Currency"),
		Category:   rec.String("Category"),
		IncurredOn: rec.Time("Incurred On"),
	}, nil
}

func normalizeTrip(rec airtable.Record) (*models.Trip, error) {
	if rec.Fields == nil {
		return nil, errEmptyRecord
	}
	return &models.Trip{
		ID:          uuid.New().String(),
		Name:        rec.String("Booking Reference"),
		Traveler:    rec.String("Traveler"),
		Destination: rec.String("Destination"),
		Status:      rec.String("Status"),
		StartsOn:    rec.Time("Starts On"),
		EndsOn:      rec.Time("Ends On"),
	}, nil
}

package cli

import (
	"github.com/opsmith/opsync/internal/dispatch"
	"github.com/opsmith/opsync/internal/service"
)

// Job names double as subcommand names.
const (
	JobSyncAssetInventory = "sync-asset-inventory"
	JobSyncSwagInventory  = "sync-swag-inventory"
	JobSyncRepos          = "sync-repos"
	JobSyncShipments      = "sync-shipments"
	JobSyncFinance        = "sync-finance"
	JobSyncTravel         = "sync-travel"
)

// jobSpecs is the single registry of sync jobs: name, dispatch policy,
// and the service method that runs one company's sweep. Finance is the
// only job that keeps going past a failed company.
func jobSpecs(svc *service.SyncService) []dispatch.Spec {
	return []dispatch.Spec{
		{
			Name:  JobSyncAssetInventory,
			Short: "Sync asset inventory records, barcode artifacts and labels",
			Run:   svc.SyncAssetItems,
		},
		{
			Name:  JobSyncSwagInventory,
			Short: "Sync swag inventory records and barcode artifacts",
			Run:   svc.SyncSwagItems,
		},
		{
			Name:     JobSyncRepos,
			Short:    "Sync source repository records",
			Parallel: true,
			Run:      svc.SyncRepos,
		},
		{
			Name:     JobSyncShipments,
			Short:    "Sync inbound and outbound shipment records",
			Parallel: true,
			Run:      svc.SyncShipments,
		},
		{
			Name:            JobSyncFinance,
			Short:           "Sync expense records",
			Parallel:        true,
			ContinueOnError: true,
			Run:             svc.SyncExpenses,
		},
		{
			Name:     JobSyncTravel,
			Short:    "Sync trip records",
			Parallel: true,
			Run:      svc.SyncTrips,
		},
	}
}

package repository

import (
	"gorm.io/gorm"

	"github.com/opsmith/opsync/internal/models"
)

// Per-entity store constructors. The column lists name every mutable
// field; id, created_at and the natural key stay untouched on conflict.

func NewAssetItemStore(db *gorm.DB) *SyncStore[*models.AssetItem] {
	return NewSyncStore[*models.AssetItem](db, models.AssetItem{}.TableName(), []string{
		"type", "status", "manufacturer", "model_number", "serial_number",
		"purchase_price", "current_user_name", "qualities", "notes",
		"barcode", "barcode_png", "barcode_svg", "barcode_pdf_label",
	})
}

func NewSwagItemStore(db *gorm.DB) *SyncStore[*models.SwagItem] {
	return NewSyncStore[*models.SwagItem](db, models.SwagItem{}.TableName(), []string{
		"type", "status", "size", "color", "quantity",
		"barcode", "barcode_png", "barcode_svg", "barcode_pdf_label",
	})
}

func NewRepoStore(db *gorm.DB) *SyncStore[*models.Repo] {
	return NewSyncStore[*models.Repo](db, models.Repo{}.TableName(), []string{
		"description", "language", "default_branch", "stars", "archived",
	})
}

func NewShipmentStore(db *gorm.DB) *SyncStore[*models.Shipment] {
	return NewSyncStore[*models.Shipment](db, models.Shipment{}.TableName(), []string{
		"direction", "carrier", "status", "origin", "destination", "eta",
	})
}

func NewExpenseStore(db *gorm.DB) *SyncStore[*models.Expense] {
	return NewSyncStore[*models.Expense](db, models.Expense{}.TableName(), []string{
		"merchant", "amount", "currency", "category", "incurred_on",
	})
}

func NewTripStore(db *gorm.DB) *SyncStore[*models.Trip] {
	return NewSyncStore[*models.Trip](db, models.Trip{}.TableName(), []string{
		"traveler", "destination", "status", "starts_on", "ends_on",
	})
}

package models

import "time"

// Company is a tenant: one isolated business scope that sync jobs run
// against. Rows are seeded out of band and are read-only during a run.
type Company struct {
	ID   int    `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;uniqueIndex"`

	// Record-store credentials. Each company has its own API key and one
	// base per record family.
	AirtableAPIKey         string `gorm:"column:airtable_api_key"`
	AirtableBaseAssets     string `gorm:"column:airtable_base_id_assets"`
	AirtableBaseSwag       string `gorm:"column:airtable_base_id_swag"`
	AirtableBaseOperations string `gorm:"column:airtable_base_id_operations"`
	AirtableBaseFinance    string `gorm:"column:airtable_base_id_finance"`

	// Google Drive credentials for artifact uploads.
	GoogleAccessToken    *string    `gorm:"column:google_access_token"`
	GoogleRefreshToken   *string    `gorm:"column:google_refresh_token"`
	GoogleTokenExpiresAt *time.Time `gorm:"column:google_token_expires_at"`

	// PrinterURL is the base endpoint of the company's label printer
	// service. Empty means the company has no printer.
	PrinterURL string `gorm:"column:printer_url"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Company) TableName() string {
	return "companies"
}

package models

import (
	"fmt"
	"strings"
	"time"
)

// AssetItem represents one physical asset tracked in the inventory
// (laptops, monitors, conference room gear, ...).
type AssetItem struct {
	ID        string `gorm:"column:id;primaryKey"`
	CompanyID int    `gorm:"column:company_id;uniqueIndex:idx_asset_items_company_name"`
	Name      string `gorm:"column:name;uniqueIndex:idx_asset_items_company_name"`

	Type          string     `gorm:"column:type"`
	Status        string     `gorm:"column:status"`
	Manufacturer  string     `gorm:"column:manufacturer"`
	ModelNumber   string     `gorm:"column:model_number"`
	SerialNumber  string     `gorm:"column:serial_number"`
	PurchasePrice float64    `gorm:"column:purchase_price"`
	CurrentUser   string     `gorm:"column:current_user_name"`
	Qualities     StringList `gorm:"column:qualities;type:jsonb"`
	Notes         string     `gorm:"column:notes"`

	Barcode      string `gorm:"column:barcode"`
	BarcodePNG   string `gorm:"column:barcode_png"`
	BarcodeSVG   string `gorm:"column:barcode_svg"`
	BarcodeLabel string `gorm:"column:barcode_pdf_label"`

	ExternalRecordID string `gorm:"column:external_record_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (AssetItem) TableName() string {
	return "asset_items"
}

func (a *AssetItem) GetCompanyID() int          { return a.CompanyID }
func (a *AssetItem) SetCompanyID(id int)        { a.CompanyID = id }
func (a *AssetItem) GetName() string            { return a.Name }
func (a *AssetItem) SetName(name string)        { a.Name = name }
func (a *AssetItem) GetExternalRecordID() string { return a.ExternalRecordID }
func (a *AssetItem) SetExternalRecordID(id string) { a.ExternalRecordID = id }

func (a *AssetItem) GetBarcode() string        { return a.Barcode }
func (a *AssetItem) SetBarcode(code string)    { a.Barcode = code }
func (a *AssetItem) SetBarcodePNG(url string)  { a.BarcodePNG = url }
func (a *AssetItem) SetBarcodeSVG(url string)  { a.BarcodeSVG = url }
func (a *AssetItem) SetBarcodeLabel(url string) { a.BarcodeLabel = url }
func (a *AssetItem) GetBarcodeLabel() string   { return a.BarcodeLabel }

// LabelDescription is the line printed under the barcode on the label.
func (a *AssetItem) LabelDescription() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", a.Manufacturer, a.Type, a.ModelNumber))
}

// ArtifactBaseName is the Drive file name stem for the item's generated
// artifacts. Slashes are stripped so the name stays a single path segment.
func (a *AssetItem) ArtifactBaseName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", a.Type, strings.ReplaceAll(a.Name, "/", "")))
}

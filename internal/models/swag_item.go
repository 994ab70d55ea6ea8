package models

import (
	"fmt"
	"strings"
	"time"
)

// SwagItem represents one piece of swag inventory (shirts, stickers,
// mugs) at a given size/color combination.
type SwagItem struct {
	ID        string `gorm:"column:id;primaryKey"`
	CompanyID int    `gorm:"column:company_id;uniqueIndex:idx_swag_items_company_name"`
	Name      string `gorm:"column:name;uniqueIndex:idx_swag_items_company_name"`

	Type     string `gorm:"column:type"`
	Status   string `gorm:"column:status"`
	Size     string `gorm:"column:size"`
	Color    string `gorm:"column:color"`
	Quantity int    `gorm:"column:quantity"`

	Barcode      string `gorm:"column:barcode"`
	BarcodePNG   string `gorm:"column:barcode_png"`
	BarcodeSVG   string `gorm:"column:barcode_svg"`
	BarcodeLabel string `gorm:"column:barcode_pdf_label"`

	ExternalRecordID string `gorm:"column:external_record_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (SwagItem) TableName() string {
	return "swag_items"
}

func (s *SwagItem) GetCompanyID() int             { return s.CompanyID }
func (s *SwagItem) SetCompanyID(id int)           { s.CompanyID = id }
func (s *SwagItem) GetName() string               { return s.Name }
func (s *SwagItem) SetName(name string)           { s.Name = name }
func (s *SwagItem) GetExternalRecordID() string   { return s.ExternalRecordID }
func (s *SwagItem) SetExternalRecordID(id string) { s.ExternalRecordID = id }

func (s *SwagItem) GetBarcode() string         { return s.Barcode }
func (s *SwagItem) SetBarcode(code string)     { s.Barcode = code }
func (s *SwagItem) SetBarcodePNG(url string)   { s.BarcodePNG = url }
func (s *SwagItem) SetBarcodeSVG(url string)   { s.BarcodeSVG = url }
func (s *SwagItem) SetBarcodeLabel(url string) { s.BarcodeLabel = url }
func (s *SwagItem) GetBarcodeLabel() string    { return s.BarcodeLabel }

func (s *SwagItem) LabelDescription() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", s.Type, s.Size, s.Color))
}

func (s *SwagItem) ArtifactBaseName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", s.Type, strings.ReplaceAll(s.Name, "/", "")))
}

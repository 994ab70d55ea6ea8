package models

import "time"

// Shipment direction constants
const (
	ShipmentInbound  = "inbound"
	ShipmentOutbound = "outbound"
)

// Shipment represents one inbound or outbound shipment. Name is the
// carrier tracking reference.
type Shipment struct {
	ID        string `gorm:"column:id;primaryKey"`
	CompanyID int    `gorm:"column:company_id;uniqueIndex:idx_shipments_company_name"`
	Name      string `gorm:"column:name;uniqueIndex:idx_shipments_company_name"`

	Direction   string     `gorm:"column:direction;index"`
	Carrier     string     `gorm:"column:carrier"`
	Status      string     `gorm:"column:status"`
	Origin      string     `gorm:"column:origin"`
	Destination string     `gorm:"column:destination"`
	ETA         *time.Time `gorm:"column:eta"`

	ExternalRecordID string `gorm:"column:external_record_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Shipment) TableName() string {
	return "shipments"
}

func (s *Shipment) GetCompanyID() int             { return s.CompanyID }
func (s *Shipment) SetCompanyID(id int)           { s.CompanyID = id }
func (s *Shipment) GetName() string               { return s.Name }
func (s *Shipment) SetName(name string)           { s.Name = name }
func (s *Shipment) GetExternalRecordID() string   { return s.ExternalRecordID }
func (s *Shipment) SetExternalRecordID(id string) { s.ExternalRecordID = id }

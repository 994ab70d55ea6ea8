package models

import "time"

// Trip represents one booked business trip. Name is the booking
// reference.
type Trip struct {
	ID        string `gorm:"column:id;primaryKey"`
	CompanyID int    `gorm:"column:company_id;uniqueIndex:idx_trips_company_name"`
	Name      string `gorm:"column:name;uniqueIndex:idx_trips_company_name"`

	Traveler    string     `gorm:"column:traveler"`
	Destination string     `gorm:"column:destination"`
	Status      string     `gorm:"column:status"`
	StartsOn    *time.Time `gorm:"column:starts_on"`
	EndsOn      *time.Time `gorm:"column:ends_on"`

	ExternalRecordID string `gorm:"column:external_record_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Trip) TableName() string {
	return "trips"
}

func (t *Trip) GetCompanyID() int             { return t.CompanyID }
func (t *Trip) SetCompanyID(id int)           { t.CompanyID = id }
func (t *Trip) GetName() string               { return t.Name }
func (t *Trip) SetName(name string)           { t.Name = name }
func (t *Trip) GetExternalRecordID() string   { return t.ExternalRecordID }
func (t *Trip) SetExternalRecordID(id string) { t.ExternalRecordID = id }

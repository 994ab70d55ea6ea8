package models

import "time"

// Expense represents one finance ledger entry. Name is the statement
// reference from the card provider.
type Expense struct {
	ID        string `gorm:"column:id;primaryKey"`
	CompanyID int    `gorm:"column:company_id;uniqueIndex:idx_expenses_company_name"`
	Name      string `gorm:"column:name;uniqueIndex:idx_expenses_company_name"`

	Merchant   string     `gorm:"column:merchant;index"`
	Amount     float64    `gorm:"column:amount"`
	Currency   string     `gorm:"column:currency"`
	Category   string     `gorm:"column:category"`
	IncurredOn *time.Time `gorm:"column:incurred_on"`

	ExternalRecordID string `gorm:"column:external_record_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

func (e *Expense) GetCompanyID() int             { return e.CompanyID }
func (e *Expense) SetCompanyID(id int)           { e.CompanyID = id }
func (e *Expense) GetName() string               { return e.Name }
func (e *Expense) SetName(name string)           { e.Name = name }
func (e *Expense) GetExternalRecordID() string   { return e.ExternalRecordID }
func (e *Expense) SetExternalRecordID(id string) { e.ExternalRecordID = id }

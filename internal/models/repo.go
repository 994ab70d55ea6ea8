package models

import "time"

// Repo represents one source repository tracked for a company.
type Repo struct {
	ID        string `gorm:"column:id;primaryKey"`
	CompanyID int    `gorm:"column:company_id;uniqueIndex:idx_repos_company_name"`
	Name      string `gorm:"column:name;uniqueIndex:idx_repos_company_name"`

	Description   string `gorm:"column:description"`
	Language      string `gorm:"column:language"`
	DefaultBranch string `gorm:"column:default_branch"`
	Stars         int    `gorm:"column:stars"`
	Archived      bool   `gorm:"column:archived"`

	ExternalRecordID string `gorm:"column:external_record_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Repo) TableName() string {
	return "repos"
}

func (r *Repo) GetCompanyID() int             { return r.CompanyID }
func (r *Repo) SetCompanyID(id int)           { r.CompanyID = id }
func (r *Repo) GetName() string               { return r.Name }
func (r *Repo) SetName(name string)           { r.Name = name }
func (r *Repo) GetExternalRecordID() string   { return r.ExternalRecordID }
func (r *Repo) SetExternalRecordID(id string) { r.ExternalRecordID = id }

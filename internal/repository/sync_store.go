package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/opsmith/opsync/internal/models"
)

// SyncStore persists synced entities keyed by (company_id, name).
// Upserts never create duplicates and never change a row's primary key:
// a conflicting insert turns into an update of the mutable columns.
type SyncStore[T models.Synced] struct {
	db            *gorm.DB
	tableName     string
	updateColumns []string
}

func NewSyncStore[T models.Synced](db *gorm.DB, tableName string, updateColumns []string) *SyncStore[T] {
	return &SyncStore[T]{
		db:            db,
		tableName:     tableName,
		updateColumns: updateColumns,
	}
}

// Upsert inserts the entity, or updates the mutable columns of the
// existing row with the same (company_id, name).
func (s *SyncStore[T]) Upsert(ctx context.Context, item T) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "company_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns(append([]string{"updated_at"}, s.updateColumns...)),
	}).Create(item).Error
	if err != nil {
		return fmt.Errorf("failed to upsert into %s: %w", s.tableName, err)
	}
	return nil
}

// WriteBackExternalID persists the record store's identifier on the row
// matching the entity's natural key. It is a single-column update so the
// external id never participates in dedup.
func (s *SyncStore[T]) WriteBackExternalID(ctx context.Context, item T, externalID string) error {
	err := s.db.WithContext(ctx).Table(s.tableName).
		Where("company_id = ? AND name = ?", item.GetCompanyID(), item.GetName()).
		Update("external_record_id", externalID).Error
	if err != nil {
		return fmt.Errorf("failed to write back external id on %s: %w", s.tableName, err)
	}
	return nil
}

// CountByCompany returns the number of rows held for a company.
func (s *SyncStore[T]) CountByCompany(ctx context.Context, companyID int) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Table(s.tableName).
		Where("company_id = ?", companyID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count %s rows: %w", s.tableName, err)
	}
	return count, nil
}

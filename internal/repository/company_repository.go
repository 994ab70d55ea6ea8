package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/opsmith/opsync/internal/models"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// GetAll retrieves every company, ordered by id for stable runs
func (r *CompanyRepository) GetAll(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	result := r.db.WithContext(ctx).Order("id ASC").Find(&companies)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list companies: %w", result.Error)
	}
	return companies, nil
}

// GetByName retrieves a company by display name
func (r *CompanyRepository) GetByName(ctx context.Context, name string) (*models.Company, error) {
	var company models.Company
	result := r.db.WithContext(ctx).First(&company, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", result.Error)
	}
	return &company, nil
}

// UpdateGoogleTokens updates the Google access token, refresh token, and expiry
func (r *CompanyRepository) UpdateGoogleTokens(ctx context.Context, companyID int, accessToken, refreshToken string, expiresAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ?", companyID).
		Updates(map[string]interface{}{
			"google_access_token":     accessToken,
			"google_refresh_token":    refreshToken,
			"google_token_expires_at": expiresAt,
			"updated_at":              time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update google tokens: %w", result.Error)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/opsmith/opsync/internal/airtable"
	"github.com/opsmith/opsync/internal/models"
)

// RecordSource interface for the record-store API
type RecordSource interface {
	ListRecords(ctx context.Context, apiKey, baseID, table string) ([]airtable.Record, error)
}

// DriveClient interface for artifact file storage
type DriveClient interface {
	SharedDriveID(ctx context.Context, accessToken, name string) (string, error)
	FolderID(ctx context.Context, accessToken, driveID, name string) (string, error)
	CreateOrReplace(ctx context.Context, accessToken, driveID, parentID, name, mimeType string, data []byte) (string, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenRefreshResult, error)
}

// PrintClient interface for the label printer service
type PrintClient interface {
	Print(ctx context.Context, endpoint, labelURL string, quantity int) error
}

// CompanyTokenStore persists refreshed Google tokens back onto the
// company row.
type CompanyTokenStore interface {
	UpdateGoogleTokens(ctx context.Context, companyID int, accessToken, refreshToken string, expiresAt time.Time) error
}

// Store persists one synced entity type.
type Store[T models.Synced] interface {
	Upsert(ctx context.Context, item T) error
	WriteBackExternalID(ctx context.Context, item T, externalID string) error
}

type TokenRefreshResult struct {
	AccessToken  string
	ExpiresAt    time.Time
	RefreshToken string // May be same or new
}

// Stores bundles the per-entity stores the sync jobs write to.
type Stores struct {
	Assets    Store[*models.AssetItem]
	Swag      Store[*models.SwagItem]
	Repos     Store[*models.Repo]
	Shipments Store[*models.Shipment]
	Expenses  Store[*models.Expense]
	Trips     Store[*models.Trip]
}

// SyncService runs the record sync pipeline for every job kind.
type SyncService struct {
	source    RecordSource
	drive     DriveClient
	printer   PrintClient
	companies CompanyTokenStore
	stores    Stores

	sharedDriveName string
	assetsFolder    string
	swagFolder      string
}

func NewSyncService(
	source RecordSource,
	drive DriveClient,
	printer PrintClient,
	companies CompanyTokenStore,
	stores Stores,
	sharedDriveName, assetsFolder, swagFolder string,
) *SyncService {
	return &SyncService{
		source:          source,
		drive:           drive,
		printer:         printer,
		companies:       companies,
		stores:          stores,
		sharedDriveName: sharedDriveName,
		assetsFolder:    assetsFolder,
		swagFolder:      swagFolder,
	}
}

// DispatchLabel sends a persisted entity's printable label to the
// company's printer. A blank label reference or an unconfigured printer
// is a no-op; a non-accepted printer response is a failure.
func (s *SyncService) DispatchLabel(ctx context.Context, company models.Company, item models.Barcoded) error {
	if strings.TrimSpace(item.GetBarcodeLabel()) == "" {
		return nil
	}
	if company.PrinterURL == "" {
		return nil
	}
	return s.printer.Print(ctx, company.PrinterURL, item.GetBarcodeLabel(), 1)
}

// googleAccessToken returns a usable access token for the company,
// refreshing and persisting it when expired.
func (s *SyncService) googleAccessToken(ctx context.Context, log *slog.Logger, company models.Company) (string, error) {
	if company.GoogleAccessToken == nil || company.GoogleRefreshToken == nil {
		return "", fmt.Errorf("company %s missing google tokens", company.Name)
	}

	if !isTokenExpired(company.GoogleTokenExpiresAt) {
		return *company.GoogleAccessToken, nil
	}

	log.Info("google access token expired, refreshing")
	result, err := s.drive.RefreshAccessToken(ctx, *company.GoogleRefreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to refresh google token: %w", err)
	}

	if err := s.companies.UpdateGoogleTokens(ctx, company.ID, result.AccessToken, result.RefreshToken, result.ExpiresAt); err != nil {
		return "", fmt.Errorf("failed to store refreshed tokens: %w", err)
	}

	return result.AccessToken, nil
}

// isTokenExpired checks if the access token is expired or will expire within 5 minutes
func isTokenExpired(expiresAt *time.Time) bool {
	if expiresAt == nil {
		return true // Assume expired if no expiry time
	}
	return time.Now().Add(5 * time.Minute).After(*expiresAt)
}

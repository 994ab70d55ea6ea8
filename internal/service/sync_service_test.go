package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/opsmith/opsync/internal/airtable"
	"github.com/opsmith/opsync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

// testCompany returns a company with valid Google tokens and every
// base configured.
func testCompany() models.Company {
	expires := time.Now().Add(time.Hour)
	return models.Company{
		ID:                     7,
		Name:                   "Acme",
		AirtableAPIKey:         "key-acme",
		AirtableBaseAssets:     "appAssets",
		AirtableBaseSwag:       "appSwag",
		AirtableBaseOperations: "appOps",
		AirtableBaseFinance:    "appFinance",
		GoogleAccessToken:      strPtr("access-token"),
		GoogleRefreshToken:     strPtr("refresh-token"),
		GoogleTokenExpiresAt:   timePtr(expires),
		PrinterURL:             "http://printer.acme.internal",
	}
}

type fakeSource struct {
	records map[string][]airtable.Record // keyed by table name
	err     error

	calls []string // "<baseID>/<table>"
}

func (f *fakeSource) ListRecords(ctx context.Context, apiKey, baseID, table string) ([]airtable.Record, error) {
	f.calls = append(f.calls, baseID+"/"+table)
	if f.err != nil {
		return nil, f.err
	}
	return f.records[table], nil
}

type fakeStore[T models.Synced] struct {
	upserts    []T
	writeBacks map[string]string // item name -> external record id
	upsertErr  error
}

func (f *fakeStore[T]) Upsert(ctx context.Context, item T) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, item)
	return nil
}

func (f *fakeStore[T]) WriteBackExternalID(ctx context.Context, item T, externalID string) error {
	if f.writeBacks == nil {
		f.writeBacks = make(map[string]string)
	}
	f.writeBacks[item.GetName()] = externalID
	return nil
}

type fakeDrive struct {
	uploadErr error

	uploads []string // uploaded file names in order
	refresh *TokenRefreshResult
}

func (f *fakeDrive) SharedDriveID(ctx context.Context, accessToken, name string) (string, error) {
	return "drive-1", nil
}

func (f *fakeDrive) FolderID(ctx context.Context, accessToken, driveID, name string) (string, error) {
	return "folder-" + name, nil
}

func (f *fakeDrive) CreateOrReplace(ctx context.Context, accessToken, driveID, parentID, name, mimeType string, data []byte) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, name)
	return "https://drive.example.com/" + name, nil
}

func (f *fakeDrive) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenRefreshResult, error) {
	if f.refresh == nil {
		return nil, errors.New("no refresh configured")
	}
	return f.refresh, nil
}

type fakePrinter struct {
	err   error
	calls []string // "<endpoint> <labelURL> x<quantity>"
}

func (f *fakePrinter) Print(ctx context.Context, endpoint, labelURL string, quantity int) error {
	f.calls = append(f.calls, fmt.Sprintf("%s %s x%d", endpoint, labelURL, quantity))
	return f.err
}

type fakeTokenStore struct {
	updated     bool
	accessToken string
	expiresAt   time.Time
}

func (f *fakeTokenStore) UpdateGoogleTokens(ctx context.Context, companyID int, accessToken, refreshToken string, expiresAt time.Time) error {
	f.updated = true
	f.accessToken = accessToken
	f.expiresAt = expiresAt
	return nil
}

func newTestService(source RecordSource, drive DriveClient, printer PrintClient, tokens CompanyTokenStore, stores Stores) *SyncService {
	return NewSyncService(source, drive, printer, tokens, stores, "Automated Documents", "assets", "swag")
}

func TestDispatchLabel(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		printerURL string
		wantCalls  int
	}{
		{
			name:       "label and printer configured",
			label:      "https://drive.example.com/label.pdf",
			printerURL: "http://printer.internal",
			wantCalls:  1,
		},
		{
			name:       "blank label is a no-op",
			label:      "   ",
			printerURL: "http://printer.internal",
			wantCalls:  0,
		},
		{
			name:      "no printer configured is a no-op",
			label:     "https://drive.example.com/label.pdf",
			wantCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			printer := &fakePrinter{}
			svc := newTestService(&fakeSource{}, &fakeDrive{}, printer, &fakeTokenStore{}, Stores{})

			company := testCompany()
			company.PrinterURL = tt.printerURL
			item := &models.AssetItem{Name: "box", BarcodeLabel: tt.label}

			if err := svc.DispatchLabel(context.Background(), company, item); err != nil {
				t.Fatalf("DispatchLabel() error = %v", err)
			}
			if len(printer.calls) != tt.wantCalls {
				t.Errorf("printer calls = %d, want %d", len(printer.calls), tt.wantCalls)
			}
		})
	}
}

func TestDispatchLabel_PrinterError(t *testing.T) {
	printer := &fakePrinter{err: errors.New("out of label stock")}
	svc := newTestService(&fakeSource{}, &fakeDrive{}, printer, &fakeTokenStore{}, Stores{})

	item := &models.AssetItem{Name: "box", BarcodeLabel: "https://drive.example.com/label.pdf"}
	if err := svc.DispatchLabel(context.Background(), testCompany(), item); err == nil {
		t.Fatal("expected error from printer, got nil")
	}
}

func TestGoogleAccessToken_Valid(t *testing.T) {
	tokens := &fakeTokenStore{}
	svc := newTestService(&fakeSource{}, &fakeDrive{}, &fakePrinter{}, tokens, Stores{})

	token, err := svc.googleAccessToken(context.Background(), testLogger(), testCompany())
	if err != nil {
		t.Fatalf("googleAccessToken() error = %v", err)
	}
	if token != "access-token" {
		t.Errorf("token = %q, want %q", token, "access-token")
	}
	if tokens.updated {
		t.Error("token store updated for a still-valid token")
	}
}

func TestGoogleAccessToken_RefreshesExpired(t *testing.T) {
	newExpiry := time.Now().Add(time.Hour)
	drive := &fakeDrive{refresh: &TokenRefreshResult{
		AccessToken:  "fresh-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    newExpiry,
	}}
	tokens := &fakeTokenStore{}
	svc := newTestService(&fakeSource{}, drive, &fakePrinter{}, tokens, Stores{})

	company := testCompany()
	company.GoogleTokenExpiresAt = timePtr(time.Now().Add(-time.Minute))

	token, err := svc.googleAccessToken(context.Background(), testLogger(), company)
	if err != nil {
		t.Fatalf("googleAccessToken() error = %v", err)
	}
	if token != "fresh-token" {
		t.Errorf("token = %q, want %q", token, "fresh-token")
	}
	if !tokens.updated {
		t.Fatal("refreshed token was not persisted")
	}
	if tokens.accessToken != "fresh-token" {
		t.Errorf("persisted token = %q, want %q", tokens.accessToken, "fresh-token")
	}
}

func TestGoogleAccessToken_MissingTokens(t *testing.T) {
	svc := newTestService(&fakeSource{}, &fakeDrive{}, &fakePrinter{}, &fakeTokenStore{}, Stores{})

	company := testCompany()
	company.GoogleRefreshToken = nil

	if _, err := svc.googleAccessToken(context.Background(), testLogger(), company); err == nil {
		t.Fatal("expected error for company without tokens, got nil")
	}
}

func TestIsTokenExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt *time.Time
		want      bool
	}{
		{"nil expiry", nil, true},
		{"past expiry", timePtr(time.Now().Add(-time.Hour)), true},
		{"inside skew window", timePtr(time.Now().Add(2 * time.Minute)), true},
		{"comfortably valid", timePtr(time.Now().Add(time.Hour)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTokenExpired(tt.expiresAt); got != tt.want {
				t.Errorf("isTokenExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

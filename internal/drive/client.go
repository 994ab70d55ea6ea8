// Package drive uploads generated artifacts to a company's shared
// Google Drive.
package drive

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/oauth2"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/opsmith/opsync/internal/service"
)

type Client struct {
	clientID     string
	clientSecret string
}

func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

func (c *Client) driveService(ctx context.Context, accessToken string) (*drive.Service, error) {
	token := &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}

	svc, err := drive.NewService(ctx, option.WithTokenSource(oauth2.StaticTokenSource(token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}
	return svc, nil
}

// SharedDriveID resolves a shared drive by its display name.
func (c *Client) SharedDriveID(ctx context.Context, accessToken, name string) (string, error) {
	svc, err := c.driveService(ctx, accessToken)
	if err != nil {
		return "", err
	}

	list, err := svc.Drives.List().Q(fmt.Sprintf("name = '%s'", escapeQuery(name))).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to list shared drives: %w", err)
	}
	if len(list.Drives) == 0 {
		return "", fmt.Errorf("shared drive %q not found", name)
	}
	return list.Drives[0].Id, nil
}

// FolderID resolves a folder by name inside a shared drive.
func (c *Client) FolderID(ctx context.Context, accessToken, driveID, name string) (string, error) {
	svc, err := c.driveService(ctx, accessToken)
	if err != nil {
		return "", err
	}

	query := fmt.Sprintf(
		"name = '%s' and mimeType = 'application/vnd.google-apps.folder' and trashed = false",
		escapeQuery(name))
	list, err := svc.Files.List().
		Q(query).
		Corpora("drive").
		DriveId(driveID).
		IncludeItemsFromAllDrives(true).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to find folder %q: %w", name, err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("folder %q not found in drive %s", name, driveID)
	}
	return list.Files[0].Id, nil
}

// CreateOrReplace writes a file by name under the given parent,
// replacing any existing file with that name. Re-uploads of unchanged
// content are therefore idempotent at the storage layer. Returns a
// resolvable download URL for the file.
func (c *Client) CreateOrReplace(ctx context.Context, accessToken, driveID, parentID, name, mimeType string, data []byte) (string, error) {
	svc, err := c.driveService(ctx, accessToken)
	if err != nil {
		return "", err
	}

	query := fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false",
		escapeQuery(name), parentID)
	list, err := svc.Files.List().
		Q(query).
		Corpora("drive").
		DriveId(driveID).
		IncludeItemsFromAllDrives(true).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to look up file %q: %w", name, err)
	}

	var fileID string
	if len(list.Files) > 0 {
		file, err := svc.Files.
			Update(list.Files[0].Id, &drive.File{MimeType: mimeType}).
			Media(bytes.NewReader(data)).
			SupportsAllDrives(true).
			Context(ctx).
			Do()
		if err != nil {
			return "", fmt.Errorf("failed to update file %q: %w", name, err)
		}
		fileID = file.Id
	} else {
		file, err := svc.Files.
			Create(&drive.File{
				Name:     name,
				MimeType: mimeType,
				Parents:  []string{parentID},
			}).
			Media(bytes.NewReader(data)).
			SupportsAllDrives(true).
			Context(ctx).
			Do()
		if err != nil {
			return "", fmt.Errorf("failed to create file %q: %w", name, err)
		}
		fileID = file.Id
	}

	return fmt.Sprintf("https://drive.google.com/uc?export=download&id=%s", fileID), nil
}

// RefreshAccessToken refreshes the OAuth2 access token
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (*service.TokenRefreshResult, error) {
	config := &oauth2.Config{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL: "https://oauth2.googleapis.com/token",
		},
	}

	token := &oauth2.Token{
		RefreshToken: refreshToken,
	}

	tokenSource := config.TokenSource(ctx, token)
	newToken, err := tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	result := &service.TokenRefreshResult{
		AccessToken: newToken.AccessToken,
		ExpiresAt:   newToken.Expiry,
	}

	// Check if refresh token was rotated
	if newToken.RefreshToken != "" && newToken.RefreshToken != refreshToken {
		result.RefreshToken = newToken.RefreshToken
	} else {
		result.RefreshToken = refreshToken
	}

	slog.Debug("google token refreshed", "expires_at", result.ExpiresAt)

	return result, nil
}

func escapeQuery(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}

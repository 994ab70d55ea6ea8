package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/opsmith/opsync/internal/barcode"
	"github.com/opsmith/opsync/internal/models"
)

// uploadTarget is the resolved Drive location for one company run. The
// shared drive and folder are looked up once per run, not per record.
type uploadTarget struct {
	accessToken string
	driveID     string
	folderID    string
}

// resolveUploadTarget authenticates the company against Google and
// resolves its artifact folder inside the shared drive.
func (s *SyncService) resolveUploadTarget(ctx context.Context, log *slog.Logger, company models.Company, folderName string) (uploadTarget, error) {
	token, err := s.googleAccessToken(ctx, log, company)
	if err != nil {
		return uploadTarget{}, err
	}

	driveID, err := s.drive.SharedDriveID(ctx, token, s.sharedDriveName)
	if err != nil {
		return uploadTarget{}, err
	}

	folderID, err := s.drive.FolderID(ctx, token, driveID, folderName)
	if err != nil {
		return uploadTarget{}, err
	}

	return uploadTarget{accessToken: token, driveID: driveID, folderID: folderID}, nil
}

// expandBarcodeArtifacts derives the item's barcode and produces its
// artifacts in order: raster image, vector image, printable label. Each
// upload is create-or-replace by name, so regenerating an unchanged
// item rewrites identical files. A failure stops the chain; reference
// fields are only set for artifacts that were produced.
func (s *SyncService) expandBarcodeArtifacts(ctx context.Context, log *slog.Logger, company models.Company, target uploadTarget, item models.Barcoded) error {
	code := barcode.Derive(item.GetName())
	if len(code) > barcode.MaxLength {
		log.Warn("barcode exceeds max length",
			"barcode", code,
			"length", len(code),
			"max", barcode.MaxLength,
			"company_id", company.ID,
			"name", item.GetName())
	}
	item.SetBarcode(code)

	baseName := item.ArtifactBaseName()

	pngBytes, err := barcode.PNG(code)
	if err != nil {
		return err
	}
	pngURL, err := s.drive.CreateOrReplace(ctx, target.accessToken, target.driveID, target.folderID,
		fmt.Sprintf("%s.png", baseName), "image/png", pngBytes)
	if err != nil {
		return fmt.Errorf("failed to upload barcode png: %w", err)
	}
	item.SetBarcodePNG(pngURL)

	svgBytes, err := barcode.SVG(code)
	if err != nil {
		return err
	}
	svgURL, err := s.drive.CreateOrReplace(ctx, target.accessToken, target.driveID, target.folderID,
		fmt.Sprintf("%s.svg", baseName), "image/svg+xml", svgBytes)
	if err != nil {
		return fmt.Errorf("failed to upload barcode svg: %w", err)
	}
	item.SetBarcodeSVG(svgURL)

	labelBytes, err := barcode.Label(pngBytes, code, item.GetName(), item.LabelDescription())
	if err != nil {
		return err
	}
	labelURL, err := s.drive.CreateOrReplace(ctx, target.accessToken, target.driveID, target.folderID,
		fmt.Sprintf("%s - Barcode Label.pdf", baseName), "application/pdf", labelBytes)
	if err != nil {
		return fmt.Errorf("failed to upload barcode label: %w", err)
	}
	item.SetBarcodeLabel(labelURL)

	return nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"

	"github.com/opsmith/opsync/internal/airtable"
	"github.com/opsmith/opsync/internal/models"
)

// sweep describes one pass over a record-store table for one company:
// which collection to fetch, how to map raw records onto the entity,
// and optional per-record artifact and post-persist hooks.
type sweep[T models.Synced] struct {
	baseID    string
	table     string
	normalize func(rec airtable.Record) (T, error)
	// expand derives the barcode and generates/uploads artifacts.
	// Optional; runs between normalization and upsert.
	expand func(ctx context.Context, item T) error
	// after runs after the entity is fully persisted (label dispatch).
	after func(ctx context.Context, item T) error
}

// runSweep executes the record sync pipeline over every record of one
// collection: fetch, then per record normalize -> derive/expand ->
// upsert -> write-back -> after. A failing record is logged with enough
// context to find it and does not stop its siblings; only a failure of
// the bulk fetch itself fails the sweep.
func runSweep[T models.Synced](
	ctx context.Context,
	log *slog.Logger,
	source RecordSource,
	store Store[T],
	company models.Company,
	sw sweep[T],
) error {
	records, err := source.ListRecords(ctx, company.AirtableAPIKey, sw.baseID, sw.table)
	if err != nil {
		return fmt.Errorf("failed to fetch %q records: %w", sw.table, err)
	}

	seen := make(map[string]bool, len(records))
	failed := 0
	for _, rec := range records {
		if err := syncRecord(ctx, store, company, seen, rec, sw); err != nil {
			log.Error("record sync failed",
				"table", sw.table,
				"record_id", rec.ID,
				"name", rec.String("Name"),
				"error", err)
			failed++
		}
	}

	log.Info("sweep complete", "table", sw.table, "records", len(records), "failed", failed)
	return nil
}

// syncRecord runs the pipeline stages for a single record. Stage order
// is strict: a failure aborts this record and leaves whatever the
// previous sync persisted untouched.
func syncRecord[T models.Synced](
	ctx context.Context,
	store Store[T],
	company models.Company,
	seen map[string]bool,
	rec airtable.Record,
	sw sweep[T],
) error {
	item, err := sw.normalize(rec)
	if err != nil {
		return fmt.Errorf("failed to normalize record: %w", err)
	}

	// (company id, name) is the upsert key; a record without a name
	// gets a synthesized one so it still has a stable identity.
	name := strings.TrimSpace(item.GetName())
	if name == "" {
		for name == "" || seen[name] {
			name = petname.Generate(2, "-")
		}
	}
	seen[name] = true
	item.SetName(name)
	item.SetCompanyID(company.ID)

	if sw.expand != nil {
		if err := sw.expand(ctx, item); err != nil {
			return fmt.Errorf("failed to generate artifacts: %w", err)
		}
	}

	if err := store.Upsert(ctx, item); err != nil {
		return fmt.Errorf("failed to persist: %w", err)
	}

	if err := store.WriteBackExternalID(ctx, item, rec.ID); err != nil {
		return fmt.Errorf("failed to write back external id: %w", err)
	}

	if sw.after != nil {
		if err := sw.after(ctx, item); err != nil {
			return fmt.Errorf("post-sync dispatch failed: %w", err)
		}
	}

	return nil
}

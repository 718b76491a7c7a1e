package postgres

import (
	"context"
	"fmt"
	"time"

	"filescan/pkg/domain"
	"filescan/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	fileScansTable = "file_scans"
)

func (p *PgSQL) StoreFileScans(ctx context.Context, files ...domain.FileScan) ([]domain.FileScan, error) {
	if len(files) == 0 {
		return nil, nil
	}

	var result []PgFileScan
	if err := p.Builder.Insert(fileScansTable).
		Rows(domainFileScansToPg(files)).
		Returning(&PgFileScan{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store file scans into pg: %w", err)
	}

	return pgFileScansToDomain(result), nil
}

// updateRecord translates a FileScanUpdates into a goqu record. Attempts is
// incremented and updated_at refreshed on every update.
func updateRecord(updates storage.FileScanUpdates) goqu.Record {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
	}
	if updates.Verdict != "" {
		if updates.Verdict == domain.VerdictUnknown && updates.MaxAttempts > 0 {
			// finalize to UNKNOWN on the last budgeted attempt, otherwise keep
			// the current (defaulted) verdict
			rec["verdict"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE verdict END",
				updates.MaxAttempts, string(updates.Verdict))
		} else {
			rec["verdict"] = string(updates.Verdict)
		}
	}
	if updates.Degraded != nil {
		rec["degraded"] = *updates.Degraded
	}
	if updates.ScanHandle != nil {
		rec["scan_handle"] = *updates.ScanHandle
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	return rec
}

// UpdateDegradedFileScansByFingerprint updates all degraded records for the
// given fingerprint with provided fields. Only provided fields are set.
// Attempts is incremented by 1 and updated_at is set.
func (p *PgSQL) UpdateDegradedFileScansByFingerprint(ctx context.Context,
	fingerprint string,
	updates storage.FileScanUpdates) error {
	_, err := p.Builder.Update(fileScansTable).
		Set(updateRecord(updates)).Where(
		goqu.I("fingerprint").Eq(fingerprint),
		goqu.I("degraded").IsTrue(),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update degraded file scans by fingerprint in pg: %w", err)
	}

	return nil
}

// DegradedFileScanCountByFingerprint counts degraded, non-deleted records for
// the given fingerprint across all users.
func (p *PgSQL) DegradedFileScanCountByFingerprint(ctx context.Context, fingerprint string) (int64, error) {
	count, err := p.Builder.From(fileScansTable).
		Where(
			goqu.I("fingerprint").Eq(fingerprint),
			goqu.I("degraded").IsTrue(),
			goqu.I("deleted_at").IsNull(),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count degraded file scans by fingerprint in pg: %w", err)
	}

	return count, nil
}

// UpdateFileScanByID updates a single record by ID, ignoring soft-deleted
// rows, and returns the updated row.
func (p *PgSQL) UpdateFileScanByID(ctx context.Context,
	id domain.FileID,
	updates storage.FileScanUpdates) (*domain.FileScan, error) {
	var row PgFileScan
	found, err := p.Builder.Update(fileScansTable).
		Set(updateRecord(updates)).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgFileScan{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update file scan by id in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteFileScan performs a soft delete by setting deleted_at timestamp
// for a given record id and user, returning the deleted record.
func (p *PgSQL) DeleteFileScan(ctx context.Context,
	userID domain.UserID,
	id domain.FileID) (*domain.FileScan, error) {
	var row PgFileScan
	found, err := p.Builder.Update(fileScansTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgFileScan{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete file scan in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserFileScans returns a page of records for a user filtered by optional
// verdict and cursor, limited by limit. Results are ordered by
// created_at DESC, id DESC. Returns the next cursor for pagination.
func (p *PgSQL) UserFileScans(ctx context.Context,
	userID domain.UserID,
	verdict domain.Verdict,
	cursor time.Time,
	limit uint) (storage.UserFileScans, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if verdict != "" {
		w = append(w, goqu.I("verdict").Eq(string(verdict)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(fileScansTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgFileScan
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserFileScans{}, fmt.Errorf("could not fetch user file scans from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.UserFileScans{
		Files:      pgFileScansToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// FileScanByID returns a record by its ID, excluding soft-deleted rows.
func (p *PgSQL) FileScanByID(ctx context.Context,
	userID domain.UserID,
	id domain.FileID) (*domain.FileScan, error) {
	var row PgFileScan
	found, err := p.Builder.From(fileScansTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch file scan by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// LastResolvedFileScanByFingerprint returns the most recent record carrying a
// terminal, non-degraded verdict for the given fingerprint across all users.
func (p *PgSQL) LastResolvedFileScanByFingerprint(ctx context.Context,
	fingerprint string) (*domain.FileScan, error) {
	var row PgFileScan
	found, err := p.Builder.From(fileScansTable).
		Where(
			goqu.I("fingerprint").Eq(fingerprint),
			goqu.I("degraded").IsFalse(),
			goqu.I("verdict").In(string(domain.VerdictClean), string(domain.VerdictMalicious)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch last resolved file scan by fingerprint: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

package storage

import (
	"context"
	"time"

	"filescan/pkg/domain"
)

// FileScanUpdates describes a set of optional fields that can be applied to
// existing file scan records during an update. Only provided fields are set.
type FileScanUpdates struct {
	// Verdict is the new verdict to set for the record.
	Verdict domain.Verdict
	// Degraded, when provided, replaces the degraded flag.
	Degraded *bool
	// ScanHandle, when provided, replaces the stored scan handle.
	ScanHandle *string
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// MaxAttempts, when provided alongside an UNKNOWN verdict, ensures the
	// verdict is only finalized to UNKNOWN once the attempts after increment
	// reach this threshold, so the last budgeted attempt finalizes.
	// A value <= 0 disables this guard.
	MaxAttempts int
}

// UserFileScans groups a page of file scans returned for a user together with
// an optional NextCursor used for pagination.
type UserFileScans struct {
	// Files contains the current page of file scan records.
	Files []domain.FileScan
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// FileScanStorage defines CRUD and query operations related to file scans.
// Implementations should ensure idempotency and proper handling of
// soft-deletes where applicable.
type FileScanStorage interface {
	// StoreFileScans inserts one or more file scans and returns the stored rows
	// as they exist in the database (including generated fields).
	StoreFileScans(ctx context.Context, files ...domain.FileScan) ([]domain.FileScan, error)
	// UpdateDegradedFileScansByFingerprint updates all degraded records sharing
	// the given content fingerprint using the provided field set.
	// Notes:
	// - Attempts is incremented by 1 and updated_at is set automatically.
	// - If Verdict is UNKNOWN and MaxAttempts > 0, the verdict is only set when
	//   the attempts after increment reach MaxAttempts; otherwise the verdict
	//   remains unchanged (i.e., stays at the defaulted value).
	UpdateDegradedFileScansByFingerprint(ctx context.Context, fingerprint string, updates FileScanUpdates) error
	// DegradedFileScanCountByFingerprint returns the total number of degraded
	// records for the given fingerprint across all users. Soft-deleted records
	// are excluded from the count.
	DegradedFileScanCountByFingerprint(ctx context.Context, fingerprint string) (int64, error)
	// UpdateFileScanByID updates a single record identified by its ID and returns
	// the updated row. The update ignores soft-deleted rows and sets updated_at
	// automatically. Only provided fields are changed.
	UpdateFileScanByID(ctx context.Context, ID domain.FileID, updates FileScanUpdates) (*domain.FileScan, error)
	// DeleteFileScan performs a soft delete for the given record ID and user ID
	// and returns the deleted record, or nil if it was not found.
	DeleteFileScan(ctx context.Context, userID domain.UserID, ID domain.FileID) (*domain.FileScan, error)
	// UserFileScans returns a page of records for a user created before the
	// optional cursor time, limited by the given limit. If verdict is non-empty,
	// results are filtered to records with the given verdict.
	UserFileScans(ctx context.Context,
		userID domain.UserID,
		verdict domain.Verdict,
		cursor time.Time,
		limit uint) (UserFileScans, error)
	// FileScanByID fetches a record by its ID for the given user, excluding
	// soft-deleted rows. Returns nil when not found.
	FileScanByID(ctx context.Context, userID domain.UserID, ID domain.FileID) (*domain.FileScan, error)
	// LastResolvedFileScanByFingerprint returns the most recent record with a
	// terminal, non-degraded verdict for the given fingerprint across all users.
	// Returns nil when no such record exists. It backs the local dedup fast
	// path: a fingerprint already settled locally never reaches the remote
	// service again.
	LastResolvedFileScanByFingerprint(ctx context.Context, fingerprint string) (*domain.FileScan, error)
}

// Package upload coordinates the upload pipeline: verdict resolution, blob
// persistence, record keeping and background rescans of degraded verdicts.
package upload

import (
	"context"

	"filescan/pkg/domain"
)

//go:generate mockgen -package mockupload -source=interface.go -destination=mock/mockupload.go *
type Service interface {
	// Upload classifies the file synchronously and persists the record. The
	// contents are kept in the blob store unless the verdict is malicious.
	Upload(ctx context.Context, userID domain.UserID, filename string, contents []byte) (*domain.FileScan, error)
	// UserFiles returns a page of the user's records, optionally filtered by
	// verdict, using an RFC3339 timestamp cursor.
	UserFiles(ctx context.Context,
		userID domain.UserID,
		verdict domain.Verdict,
		cursor string,
		limit uint) ([]domain.FileScan, string, error)
	// File fetches a single record by ID for the given user.
	File(ctx context.Context, userID domain.UserID, fileID domain.FileID) (*domain.FileScan, error)
	// DownloadURL returns a short-lived presigned URL for the file contents.
	// Malicious and unresolved files cannot be downloaded.
	DownloadURL(ctx context.Context, userID domain.UserID, fileID domain.FileID) (string, error)
	// Delete soft-deletes a record belonging to the given user.
	Delete(ctx context.Context, userID domain.UserID, fileID domain.FileID) error
}

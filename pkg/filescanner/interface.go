// Package filescanner defines the interface and data types used to look up,
// upload and poll files against a backing malware analysis provider.
package filescanner

import (
	"context"

	"filescan/pkg/domain"
)

// Analysis status values reported by the provider.
const (
	// StatusQueued means the analysis has been accepted but not started.
	StatusQueued = "queued"
	// StatusInProgress means the analysis is running.
	StatusInProgress = "in-progress"
	// StatusCompleted means the analysis finished and stats are available.
	StatusCompleted = "completed"
)

// FileReport is the provider's record for a known file, addressed by its
// content hash. LastAnalysisStats is set when the provider already holds a
// finished analysis for the hash; LastAnalysisID references the most recent
// analysis job when only that is known.
type FileReport struct {
	// ID is the provider-side identifier of the file, normally the hash itself.
	ID string
	// LastAnalysisID is the identifier of the most recent analysis job, if any.
	LastAnalysisID string
	// LastAnalysisStats holds the per-detector summary of the last completed
	// analysis. Nil when the provider has not finished analyzing the file.
	LastAnalysisStats *domain.AnalysisStats
}

// AnalysisReport is the state of one analysis job.
type AnalysisReport struct {
	// ID is the analysis job identifier.
	ID string
	// Status is one of StatusQueued, StatusInProgress or StatusCompleted.
	Status string
	// Stats holds per-detector results; set only when Status is StatusCompleted.
	Stats *domain.AnalysisStats
}

// Client is the abstraction for malware analysis providers. Implementations
// look up files by content hash, upload unknown files for analysis and fetch
// analysis results.
//
// Error contract: lookups of unknown entities return serrors.ErrNotFound,
// quota exhaustion returns serrors.ErrRateLimited, duplicate uploads return
// serrors.ErrConflict or serrors.ErrBadRequest and analyses without a result
// yet return serrors.ErrAnalysisPending.
//
//go:generate mockgen -package mockfilescanner -source=interface.go -destination=mock/mockfilescanner.go *
type Client interface {
	// FileReport fetches the provider's record for the given content hash.
	FileReport(ctx context.Context, fingerprint string) (*FileReport, error)
	// UploadFile submits the file bytes for analysis and returns the ID of the
	// freshly created analysis job.
	UploadFile(ctx context.Context, filename string, contents []byte) (string, error)
	// Analysis fetches the state of a previously created analysis job.
	Analysis(ctx context.Context, analysisID string) (*AnalysisReport, error)
}

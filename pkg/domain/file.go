package domain

import (
	"time"

	"github.com/google/uuid"
)

// FileID uniquely identifies an uploaded file record.
// It wraps uuid.UUID to provide type safety at the domain layer.
type FileID uuid.UUID

// Verdict is the malware classification of an uploaded file.
type Verdict string

const (
	// VerdictPending indicates the remote analysis has not completed yet.
	VerdictPending Verdict = "PENDING"
	// VerdictClean indicates the analysis completed with zero malicious detections.
	VerdictClean Verdict = "CLEAN"
	// VerdictMalicious indicates at least one detector flagged the file as malicious.
	VerdictMalicious Verdict = "MALICIOUS"
	// VerdictUnknown indicates no definitive answer could be obtained from the
	// scanning service. It is only produced by the fail-closed policy.
	VerdictUnknown Verdict = "UNKNOWN"
)

// Terminal reports whether the verdict is final. Terminal verdicts are
// immutable; only a background rescan of a degraded record may replace an
// UNKNOWN or defaulted CLEAN verdict with a real one.
func (v Verdict) Terminal() bool {
	return v == VerdictClean || v == VerdictMalicious
}

// AnalysisStats aggregates per-detector results of a completed analysis.
type AnalysisStats struct {
	Malicious  int `json:"malicious"`
	Suspicious int `json:"suspicious"`
	Harmless   int `json:"harmless"`
	Undetected int `json:"undetected"`
}

// FileScan represents a single uploaded file and the state of its malware scan.
type FileScan struct {
	// ID is the unique identifier of the record.
	ID FileID `json:"id"`
	// UserID is the identifier of the user who uploaded the file.
	UserID UserID `json:"userId"`

	// Name is the original filename supplied by the uploader.
	Name string `json:"name"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
	// Fingerprint is the SHA-256 content hash of the file, hex encoded.
	Fingerprint string `json:"fingerprint"`

	// Verdict is the current classification of the file.
	Verdict Verdict `json:"verdict"`
	// ScanHandle references the remote analysis job that produced (or will
	// produce) the verdict. It is either a server-issued analysis ID or, in
	// degraded modes, the fingerprint itself.
	ScanHandle string `json:"scanHandle,omitempty"`
	// Degraded marks a verdict that was defaulted by policy because the
	// scanning service never returned a completed analysis. Degraded records
	// are rescanned in the background.
	Degraded bool `json:"degraded,omitempty"`

	// Attempts is the number of background rescan attempts made for this record.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent error message, if any, encountered while
	// rescanning the file.
	LastError string `json:"-"`

	// CreatedAt is the time when the file was uploaded.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the record was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the record was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

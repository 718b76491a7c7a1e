// Package scan implements the file-scanning orchestration layer: submitting
// file contents to the remote malware analysis service (deduplicated by
// content hash), polling for a completed verdict under the provider's rate
// limit, and resolving every outcome to a definitive verdict within bounded
// time.
package scan

import (
	"context"

	"filescan/pkg/domain"
)

// Outcome is the result of resolving one file.
type Outcome struct {
	// Verdict is the final classification. Always one of CLEAN, MALICIOUS or
	// UNKNOWN; never PENDING.
	Verdict domain.Verdict
	// Handle references the remote analysis the verdict came from. Empty when
	// the file was resolved without any remote interaction (blocklist hit).
	Handle string
	// Degraded marks a verdict that was defaulted by policy because the remote
	// service never produced a completed analysis.
	Degraded bool
}

// Submission is the result of placing a file with the remote service.
type Submission struct {
	// Handle references the remote analysis: a server-issued analysis ID after
	// an upload, or the fingerprint itself when the service already knows the
	// hash (or could not issue an ID).
	Handle string
	// Stats carries the analysis summary when the lookup already returned a
	// completed one, letting the caller classify without another round trip.
	Stats *domain.AnalysisStats
}

//go:generate mockgen -package mockscan -source=interface.go -destination=mock/mockscan.go *

// Submitter places a file with the remote scanning service and returns an
// opaque scan handle, reusing an existing remote record when the content hash
// is already known.
type Submitter interface {
	// Submit returns a Submission for the file. Rate-limit exhaustion is
	// surfaced as serrors.ErrRateLimited and never swallowed.
	Submit(ctx context.Context, contents []byte, filename, fingerprint string) (Submission, error)
}

// Poller drives a scan handle to a verdict by querying the remote service.
type Poller interface {
	// Poll issues one remote lookup for the handle and classifies the response.
	// Non-terminal states yield domain.VerdictPending with a nil error.
	Poll(ctx context.Context, handle string) (domain.Verdict, error)
	// PollWithRetry polls until a terminal verdict, an error, or maxAttempts
	// non-completing polls. Exhausting the budget returns domain.VerdictUnknown
	// with serrors.ErrTimeout; callers are expected to map that to a safe
	// default rather than treat it as a hard failure.
	PollWithRetry(ctx context.Context, handle string, maxAttempts int) (domain.Verdict, error)
}

// Resolver combines submission and polling into one call and maps every
// failure mode to a policy default. Errors from the remote service never
// escape Resolve.
type Resolver interface {
	Resolve(ctx context.Context, contents []byte, filename string) Outcome
}

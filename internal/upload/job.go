package upload

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RescanArgs contains the arguments for a rescan job submitted to River. One
// job covers every degraded record sharing the same content fingerprint.
type RescanArgs struct {
	// Fingerprint is the SHA-256 content hash of the degraded records. It is
	// marked as unique so River enforces one job per fingerprint.
	Fingerprint string `json:"fingerprint" river:"unique"`
	// Handle references the remote analysis to re-poll. It is either a
	// server-issued analysis ID or the fingerprint itself.
	Handle string `json:"handle"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the rescan worker.
func (args RescanArgs) Kind() string { return "RescanFileJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// duplicate jobs for the same fingerprint while one is still in flight.
func (args RescanArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one live job per fingerprint
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

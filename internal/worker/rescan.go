package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"filescan/internal/config"
	"filescan/internal/scan"
	"filescan/internal/upload"
	"filescan/pkg/blobstore"
	"filescan/pkg/domain"
	"filescan/pkg/logger"
	"filescan/pkg/serrors"
	"filescan/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// DefaultPendingDeadline bounds how long a rescan job keeps snoozing on a
// pending analysis before the records are finalized to UNKNOWN.
const DefaultPendingDeadline = 10 * time.Minute

// Options configure the rescan worker.
type Options struct {
	// PollInterval is the base snooze duration when the remote analysis is
	// still pending or rate limited.
	PollInterval time.Duration
	// MaxAttempts is the budget after which degraded records are finalized to
	// UNKNOWN instead of being retried further.
	MaxAttempts int
	// PendingDeadline is the maximum age of a job whose analysis never
	// completes; past it the records are finalized to UNKNOWN.
	PendingDeadline time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PollInterval:    cfg.Scanner.PollInterval,
		MaxAttempts:     cfg.Scanner.RescanMaxAttempts,
		PendingDeadline: cfg.Scanner.RescanPendingDeadline,
	}
}

// RescanWorker is a River worker that re-polls the remote analysis behind a
// degraded verdict and finalizes every record sharing the job's fingerprint.
//
// One job run issues exactly one remote poll. A pending analysis snoozes the
// job instead of spinning, which keeps the remote quota available for
// foreground uploads; an analysis still pending past the job's deadline is
// given up on and the records finalize to UNKNOWN. A rate-limited poll
// snoozes twice as long. Hard poll failures are recorded on the affected
// rows and surface as job errors so River applies its retry policy; the last
// budgeted retry finalizes the verdict to UNKNOWN.
//
// When the analysis settles malicious, the shared blob is removed before the
// rows are updated so a retry after a partial failure still finds work to do.
type RescanWorker struct {
	river.WorkerDefaults[upload.RescanArgs]

	options Options
	poller  scan.Poller
	storage storage.Storage
	blobs   blobstore.Store
}

// NewRescanWorker constructs a RescanWorker from its collaborators.
func NewRescanWorker(poller scan.Poller, strg storage.Storage, blobs blobstore.Store, options Options) *RescanWorker {
	if options.PollInterval <= 0 {
		options.PollInterval = scan.DefaultPollInterval
	}
	if options.MaxAttempts <= 0 {
		options.MaxAttempts = scan.DefaultMaxPollAttempts
	}
	if options.PendingDeadline <= 0 {
		options.PendingDeadline = DefaultPendingDeadline
	}

	return &RescanWorker{
		options: options,
		poller:  poller,
		storage: strg,
		blobs:   blobs,
	}
}

// Work executes a single rescan job.
func (w *RescanWorker) Work(ctx context.Context, job *river.Job[upload.RescanArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("fingerprint", job.Args.Fingerprint))

	// records may have been deleted or settled by a newer upload meanwhile
	count, err := w.storage.DegradedFileScanCountByFingerprint(ctx, job.Args.Fingerprint)
	if err != nil {
		return fmt.Errorf("could not count degraded records: %w", err)
	}
	if count == 0 {
		return river.JobCancel(errors.New("no degraded records left for fingerprint")) //nolint: wrapcheck
	}

	verdict, err := w.poller.Poll(ctx, job.Args.Handle)
	if err != nil {
		if errors.Is(err, serrors.ErrRateLimited) {
			logger.Debug(ctx, "rescan poll rate limited, snoozing")

			return river.JobSnooze(2 * w.options.PollInterval) //nolint: wrapcheck
		}

		logger.Error(ctx, "error polling analysis for rescan", zap.Error(err))

		// record the failure; the verdict flips to UNKNOWN only once the
		// row-level attempt budget runs out
		msg := err.Error()
		if uerr := w.storage.UpdateDegradedFileScansByFingerprint(ctx, job.Args.Fingerprint, storage.FileScanUpdates{
			Verdict:     domain.VerdictUnknown,
			LastError:   &msg,
			MaxAttempts: w.options.MaxAttempts,
		}); uerr != nil {
			logger.Error(ctx, "could not record rescan failure", zap.Error(uerr))
		}

		return fmt.Errorf("could not poll analysis: %w", err)
	}

	if !verdict.Terminal() {
		// snoozes consume no River attempts, so an analysis that never
		// completes must be aged out by wall clock
		if age := time.Since(job.CreatedAt); age >= w.options.PendingDeadline {
			logger.Warn(ctx, "analysis still pending past deadline, giving up",
				zap.Duration("age", age))

			notDegraded := false
			msg := fmt.Sprintf("analysis still pending after %s", age.Truncate(time.Second))
			if err := w.storage.UpdateDegradedFileScansByFingerprint(ctx, job.Args.Fingerprint, storage.FileScanUpdates{
				Verdict:   domain.VerdictUnknown,
				Degraded:  &notDegraded,
				LastError: &msg,
			}); err != nil {
				return fmt.Errorf("could not finalize stalled records: %w", err)
			}

			return nil
		}

		logger.Debug(ctx, "analysis still pending, snoozing rescan")

		return river.JobSnooze(w.options.PollInterval) //nolint: wrapcheck
	}

	if verdict == domain.VerdictMalicious {
		// drop the shared contents before touching the rows: if this fails the
		// job retries with the records still marked degraded
		if err := w.blobs.Delete(ctx, job.Args.Fingerprint); err != nil {
			return fmt.Errorf("could not delete malicious blob: %w", err)
		}
	}

	notDegraded := false
	clearErr := ""
	if err := w.storage.UpdateDegradedFileScansByFingerprint(ctx, job.Args.Fingerprint, storage.FileScanUpdates{
		Verdict:   verdict,
		Degraded:  &notDegraded,
		LastError: &clearErr,
	}); err != nil {
		return fmt.Errorf("could not finalize degraded records: %w", err)
	}

	logger.Info(ctx, "degraded records finalized",
		zap.String("verdict", string(verdict)),
		zap.Int64("records", count))

	return nil
}

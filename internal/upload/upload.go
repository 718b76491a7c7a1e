package upload

import (
	"context"
	"fmt"
	"time"

	"filescan/internal/config"
	"filescan/internal/scan"
	"filescan/pkg/blobstore"
	"filescan/pkg/domain"
	"filescan/pkg/logger"
	"filescan/pkg/metrics"
	"filescan/pkg/serrors"
	"filescan/pkg/storage"

	"go.uber.org/zap"
)

// Options configure the upload pipeline. These settings are typically derived
// from application configuration.
type Options struct {
	// RescanMaxAttempts is the maximum number of attempts the background worker
	// should make when rescanning a degraded record before finalizing it.
	RescanMaxAttempts int
	// DownloadURLTTL is the validity window of presigned download URLs.
	DownloadURLTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		RescanMaxAttempts: cfg.Scanner.RescanMaxAttempts,
		DownloadURLTTL:    cfg.Blob.PresignTTL,
	}
}

// service is the concrete implementation of the Service interface. It
// coordinates verdict resolution, blob persistence and record keeping.
type service struct {
	options  Options
	resolver scan.Resolver
	storage  storage.Storage
	blobs    blobstore.Store
}

// New creates a new Service backed by the provided resolver, storage and blob
// store, configured with the given options.
func New(resolver scan.Resolver, strg storage.Storage, blobs blobstore.Store, options Options) Service {
	return &service{
		options:  options,
		resolver: resolver,
		storage:  strg,
		blobs:    blobs,
	}
}

// Upload classifies the file and persists the outcome. A fingerprint that was
// already settled locally reuses that verdict without touching the remote
// service; everything else goes through the resolver. Contents of files not
// classified malicious are kept in the blob store under their fingerprint, so
// identical uploads share one object. Degraded outcomes additionally enqueue
// a background rescan job.
func (s service) Upload(ctx context.Context,
	userID domain.UserID,
	filename string,
	contents []byte) (*domain.FileScan, error) {
	if len(contents) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "empty file")
	}

	fingerprint := scan.Fingerprint(contents)
	ctx = logger.WithFields(ctx, zap.String("fingerprint", fingerprint))

	outcome, reused := s.localVerdict(ctx, filename, fingerprint)
	if !reused {
		outcome = s.resolver.Resolve(ctx, contents, filename)
	}

	// malicious contents are never persisted
	if outcome.Verdict != domain.VerdictMalicious {
		if err := s.blobs.Put(ctx, fingerprint, contents, fingerprint); err != nil {
			return nil, fmt.Errorf("could not store file contents: %w", err)
		}
	}

	var file *domain.FileScan
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreFileScans(ctx, domain.FileScan{
			UserID:      userID,
			Name:        filename,
			Size:        int64(len(contents)),
			Fingerprint: fingerprint,
			Verdict:     outcome.Verdict,
			ScanHandle:  outcome.Handle,
			Degraded:    outcome.Degraded,
		})
		if err != nil {
			return fmt.Errorf("could not store file scan: %w", err)
		}
		file = &res[0]

		if outcome.Degraded {
			// one unique job per fingerprint re-polls the analysis later and
			// finalizes every degraded record sharing it
			if _, err := tx.AddJob(ctx, RescanArgs{
				Fingerprint: fingerprint,
				Handle:      outcome.Handle,
				maxAttempts: s.options.RescanMaxAttempts,
			}, nil); err != nil {
				return fmt.Errorf("could not add rescan job: %w", err)
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not persist upload: %w", err)
	}

	return file, nil
}

// localVerdict checks whether the fingerprint was already settled by an
// earlier upload. Blocklisted filenames never take this path: their verdict
// is fixed regardless of what the contents resolved to before.
func (s service) localVerdict(ctx context.Context, filename, fingerprint string) (scan.Outcome, bool) {
	if scan.NameBlocked(filename) {
		return scan.Outcome{}, false
	}

	prior, err := s.storage.LastResolvedFileScanByFingerprint(ctx, fingerprint)
	if err != nil {
		// dedup is an optimization, a failed lookup falls through to the resolver
		logger.Warn(ctx, "could not check local verdict cache", zap.Error(err))

		return scan.Outcome{}, false
	}
	if prior == nil {
		return scan.Outcome{}, false
	}

	logger.Debug(ctx, "reusing settled verdict",
		zap.String("verdict", string(prior.Verdict)))
	metrics.Verdicts.WithLabelValues(string(prior.Verdict), metrics.SourceCache).Inc()

	return scan.Outcome{Verdict: prior.Verdict, Handle: prior.ScanHandle}, true
}

// UserFiles returns a page of records for the given user filtered by verdict.
// It supports cursor-based pagination using an RFC3339 timestamp string and
// returns the next cursor when more results are available.
func (s service) UserFiles(ctx context.Context,
	userID domain.UserID,
	verdict domain.Verdict,
	cursor string,
	limit uint) ([]domain.FileScan, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.UserFileScans(ctx, userID, verdict, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user files: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Files, next, nil
}

// File fetches a single record by ID for the given user. It returns a
// not-found error when no matching record exists.
func (s service) File(ctx context.Context,
	userID domain.UserID,
	fileID domain.FileID) (*domain.FileScan, error) {
	res, err := s.storage.FileScanByID(ctx, userID, fileID)
	if err != nil {
		return nil, fmt.Errorf("could not get file: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "file not found")
	}

	return res, nil
}

// DownloadURL generates a presigned URL for the stored contents. Malicious
// files were never persisted, and UNKNOWN verdicts stay locked until a rescan
// settles them.
func (s service) DownloadURL(ctx context.Context,
	userID domain.UserID,
	fileID domain.FileID) (string, error) {
	file, err := s.File(ctx, userID, fileID)
	if err != nil {
		return "", err
	}

	switch file.Verdict {
	case domain.VerdictMalicious:
		return "", serrors.With(serrors.ErrBadRequest, "malicious files cannot be downloaded")
	case domain.VerdictUnknown, domain.VerdictPending:
		return "", serrors.With(serrors.ErrBadRequest, "file verdict is not settled")
	case domain.VerdictClean:
	}

	url, err := s.blobs.PresignGet(ctx, file.Fingerprint, s.options.DownloadURLTTL)
	if err != nil {
		return "", fmt.Errorf("could not presign download: %w", err)
	}

	return url, nil
}

// Delete removes a record belonging to the given user. If the record does not
// exist, a not-found error is returned. The blob is kept because records of
// other users may share the same fingerprint.
func (s service) Delete(ctx context.Context, userID domain.UserID, fileID domain.FileID) error {
	res, err := s.storage.DeleteFileScan(ctx, userID, fileID)
	if err != nil {
		return fmt.Errorf("could not delete file: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "file not found")
	}

	return nil
}

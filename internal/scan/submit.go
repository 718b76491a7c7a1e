package scan

import (
	"context"
	"errors"
	"fmt"

	"filescan/pkg/filescanner"
	"filescan/pkg/logger"
	"filescan/pkg/serrors"

	"go.uber.org/zap"
)

// submitter is the concrete Submitter backed by a filescanner.Client.
type submitter struct {
	client filescanner.Client
}

// NewSubmitter creates a Submitter that deduplicates uploads against the
// remote service by content hash.
func NewSubmitter(client filescanner.Client) Submitter {
	return &submitter{client: client}
}

// Submit looks the fingerprint up first to avoid redundant uploads; only a
// remote "not found" triggers an upload of the file bytes. Conflicts and
// duplicate-analysis rejections on upload mean the service holds the file
// after all, so the lookup is retried once and the fingerprint itself serves
// as a synthetic handle when that retry fails too. Rate-limit exhaustion is
// always surfaced to the caller.
func (s *submitter) Submit(ctx context.Context,
	contents []byte,
	filename, fingerprint string) (Submission, error) {
	rep, err := s.client.FileReport(ctx, fingerprint)
	switch {
	case err == nil:
		return knownFile(fingerprint, rep), nil
	case errors.Is(err, serrors.ErrRateLimited):
		return Submission{}, fmt.Errorf("could not look up file: %w", err)
	case errors.Is(err, serrors.ErrNotFound):
		// unknown remotely, upload below
	default:
		// transient lookup failure: retry once, then degrade to a synthetic
		// handle instead of failing the whole operation
		rep, rerr := s.client.FileReport(ctx, fingerprint)
		switch {
		case rerr == nil:
			return knownFile(fingerprint, rep), nil
		case errors.Is(rerr, serrors.ErrRateLimited):
			return Submission{}, fmt.Errorf("could not look up file: %w", rerr)
		case errors.Is(rerr, serrors.ErrNotFound):
			// the retry settled on not found, upload below
		default:
			logger.Warn(ctx, "file lookup kept failing, using fingerprint as scan handle", zap.Error(rerr))

			return Submission{Handle: fingerprint}, nil
		}
	}

	analysisID, err := s.client.UploadFile(ctx, filename, contents)
	if err == nil {
		return Submission{Handle: analysisID}, nil
	}
	if errors.Is(err, serrors.ErrRateLimited) {
		return Submission{}, fmt.Errorf("could not upload file: %w", err)
	}
	if errors.Is(err, serrors.ErrConflict) || errors.Is(err, serrors.ErrBadRequest) {
		// the file exists server-side even though the lookup missed it
		rep, rerr := s.client.FileReport(ctx, fingerprint)
		if rerr != nil {
			logger.Warn(ctx, "lookup after rejected upload failed, using fingerprint as scan handle",
				zap.Error(rerr))

			return Submission{Handle: fingerprint}, nil
		}

		return knownFile(fingerprint, rep), nil
	}

	return Submission{}, fmt.Errorf("could not upload file: %w", err)
}

// knownFile builds a Submission for a hash the remote service already holds.
// A report that embeds a finished summary is passed along so the caller can
// classify it without another round trip.
func knownFile(fingerprint string, rep *filescanner.FileReport) Submission {
	sub := Submission{Handle: fingerprint}
	if rep != nil {
		sub.Stats = rep.LastAnalysisStats
	}

	return sub
}

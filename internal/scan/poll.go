package scan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"filescan/pkg/domain"
	"filescan/pkg/filescanner"
	"filescan/pkg/logger"
	"filescan/pkg/metrics"
	"filescan/pkg/serrors"

	"go.uber.org/zap"
)

// DefaultPollInterval is the minimum wait between two polls. The public API
// quota is 4 requests per minute, so anything below 8 seconds risks burning
// the budget on a single resolve call.
const DefaultPollInterval = 8 * time.Second

// PollerOptions configure the polling loop.
type PollerOptions struct {
	// Interval is the wait between two non-completing polls. Defaults to
	// DefaultPollInterval when zero.
	Interval time.Duration
}

// poller is the concrete Poller backed by a filescanner.Client.
type poller struct {
	client   filescanner.Client
	interval time.Duration
	// sleep waits for the given duration or until ctx is cancelled. Replaced
	// in tests to avoid multi-second waits.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewPoller creates a Poller that waits opts.Interval between polls.
func NewPoller(client filescanner.Client, opts PollerOptions) Poller {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &poller{
		client:   client,
		interval: interval,
		sleep:    sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("wait interrupted: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

// Poll issues one remote lookup for handle. Fingerprint-shaped handles hit
// the file-report endpoint first: a report that already embeds an analysis
// summary is classified immediately, one that references an analysis ID is
// re-queried against that ID. Server-issued handles query the analysis
// endpoint directly.
func (p *poller) Poll(ctx context.Context, handle string) (domain.Verdict, error) {
	if !IsFingerprint(handle) {
		return p.pollAnalysis(ctx, handle)
	}

	rep, err := p.client.FileReport(ctx, handle)
	if err != nil {
		// the hash may not be ingested yet; that is ordinary pending
		if errors.Is(err, serrors.ErrNotFound) || errors.Is(err, serrors.ErrAnalysisPending) {
			return domain.VerdictPending, nil
		}

		return domain.VerdictPending, err
	}
	if rep.LastAnalysisStats != nil {
		// the report embeds a finished summary, no extra round trip needed
		return ClassifyStats(*rep.LastAnalysisStats), nil
	}
	if rep.LastAnalysisID != "" {
		return p.pollAnalysis(ctx, rep.LastAnalysisID)
	}

	return domain.VerdictPending, nil
}

func (p *poller) pollAnalysis(ctx context.Context, analysisID string) (domain.Verdict, error) {
	rep, err := p.client.Analysis(ctx, analysisID)
	if err != nil {
		if errors.Is(err, serrors.ErrAnalysisPending) {
			return domain.VerdictPending, nil
		}

		return domain.VerdictPending, err
	}

	return Classify(rep), nil
}

// scanAttempt is the ephemeral state of one polling session. It lives for a
// single PollWithRetry call and is discarded afterwards.
type scanAttempt struct {
	polls  int
	waited time.Duration
}

// PollWithRetry polls until a terminal verdict or until maxAttempts polls
// have not completed. A rate-limited poll consumes one attempt like an
// ordinary pending response but doubles the wait before the next one. Any
// other error propagates immediately; the caller decides the fallback.
func (p *poller) PollWithRetry(ctx context.Context, handle string, maxAttempts int) (domain.Verdict, error) {
	var attempt scanAttempt
	defer func() {
		metrics.PollAttempts.Observe(float64(attempt.polls))
	}()

	for {
		verdict, err := p.Poll(ctx, handle)
		attempt.polls++

		wait := p.interval
		switch {
		case err == nil && verdict.Terminal():
			return verdict, nil
		case err != nil && errors.Is(err, serrors.ErrRateLimited):
			// quota exhausted: back off harder before the next poll
			wait = 2 * p.interval
			logger.Debug(ctx, "poll rate limited, doubling wait",
				zap.Duration("wait", wait),
				zap.Int("polls", attempt.polls))
		case err != nil:
			return domain.VerdictUnknown, err
		}

		if attempt.polls >= maxAttempts {
			return domain.VerdictUnknown, serrors.With(serrors.ErrTimeout,
				"no completed analysis after %d polls (waited %s)", attempt.polls, attempt.waited)
		}

		if err := p.sleep(ctx, wait); err != nil {
			return domain.VerdictUnknown, err
		}
		attempt.waited += wait
	}
}

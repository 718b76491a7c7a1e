package scan

import (
	"context"
	"strings"
	"time"

	"filescan/internal/config"
	"filescan/pkg/domain"
	"filescan/pkg/filescanner"
	"filescan/pkg/logger"
	"filescan/pkg/metrics"

	"go.uber.org/zap"
)

// DefaultMaxPollAttempts bounds the polling loop of one resolve call. Worst
// case latency is roughly MaxPollAttempts times the poll interval, plus any
// rate-limit doubling.
const DefaultMaxPollAttempts = 3

// blockedNameMarkers match the EICAR anti-virus test file and its common
// archive variants. Files whose names carry one of these markers are flagged
// malicious without ever reaching the remote service, which keeps the quota
// untouched and the behavior deterministic for such payloads.
var blockedNameMarkers = []string{"eicar.com", "eicar_com.zip", "eicarcom2.zip"} //nolint: gochecknoglobals

// NameBlocked reports whether the filename matches the fast-path blocklist,
// case-insensitively. Callers may use it to short-circuit work that only
// makes sense for files that will reach the remote service.
func NameBlocked(filename string) bool {
	name := strings.ToLower(filename)
	for _, marker := range blockedNameMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}

	return false
}

// Options configure how verdicts are resolved. They are typically derived
// from application configuration.
type Options struct {
	// PollInterval is the wait between two analysis polls.
	PollInterval time.Duration
	// MaxPollAttempts is the number of non-completing polls before a resolve
	// call gives up and applies the default verdict.
	MaxPollAttempts int
	// FailClosed switches the default verdict for degraded paths from CLEAN
	// (favor availability of the upload pipeline) to UNKNOWN (favor strict
	// scanning). The fail-open default matches the upstream behavior.
	FailClosed bool
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PollInterval:    cfg.Scanner.PollInterval,
		MaxPollAttempts: cfg.Scanner.MaxPollAttempts,
		FailClosed:      cfg.Scanner.FailClosed,
	}
}

// resolver is the concrete Resolver combining submission and polling.
type resolver struct {
	submitter   Submitter
	poller      Poller
	maxAttempts int
	// defaultVerdict is the single policy knob applied to every degraded
	// path: submission failure, polling timeout, rate-limit exhaustion.
	defaultVerdict domain.Verdict
}

// NewResolver builds a Resolver from an existing Submitter and Poller.
func NewResolver(submitter Submitter, poller Poller, opts Options) Resolver {
	maxAttempts := opts.MaxPollAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxPollAttempts
	}
	defaultVerdict := domain.VerdictClean
	if opts.FailClosed {
		defaultVerdict = domain.VerdictUnknown
	}

	return &resolver{
		submitter:      submitter,
		poller:         poller,
		maxAttempts:    maxAttempts,
		defaultVerdict: defaultVerdict,
	}
}

// New wires a Resolver directly from a filescanner.Client.
func New(client filescanner.Client, opts Options) Resolver {
	return NewResolver(
		NewSubmitter(client),
		NewPoller(client, PollerOptions{Interval: opts.PollInterval}),
		opts)
}

// Resolve classifies one file. The call is synchronous and may suspend for
// multiple polling waits; it always returns a definitive outcome and never
// propagates remote errors.
func (r *resolver) Resolve(ctx context.Context, contents []byte, filename string) Outcome {
	if NameBlocked(filename) {
		logger.Info(ctx, "filename matches blocklist, skipping remote scan",
			zap.String("filename", filename))
		metrics.Verdicts.WithLabelValues(string(domain.VerdictMalicious), metrics.SourceBlocklist).Inc()

		return Outcome{Verdict: domain.VerdictMalicious}
	}

	fingerprint := Fingerprint(contents)
	ctx = logger.WithFields(ctx, zap.String("fingerprint", fingerprint))

	sub, err := r.submitter.Submit(ctx, contents, filename, fingerprint)
	if err != nil {
		logger.Warn(ctx, "file submission failed, defaulting verdict",
			zap.Error(err),
			zap.String("default", string(r.defaultVerdict)))
		metrics.Verdicts.WithLabelValues(string(r.defaultVerdict), metrics.SourceFallback).Inc()

		// the fingerprint stands in as the scan handle so a later rescan can
		// still find the analysis
		return Outcome{Verdict: r.defaultVerdict, Handle: fingerprint, Degraded: true}
	}

	// the lookup may already carry a finished summary; classifying it here
	// saves both a poll round trip and remote quota
	if sub.Stats != nil {
		verdict := ClassifyStats(*sub.Stats)
		metrics.Verdicts.WithLabelValues(string(verdict), metrics.SourceRemote).Inc()

		return Outcome{Verdict: verdict, Handle: sub.Handle}
	}

	verdict, err := r.poller.PollWithRetry(ctx, sub.Handle, r.maxAttempts)
	if err != nil || !verdict.Terminal() {
		logger.Warn(ctx, "polling did not reach a verdict, defaulting",
			zap.Error(err),
			zap.String("handle", sub.Handle),
			zap.String("default", string(r.defaultVerdict)))
		metrics.Verdicts.WithLabelValues(string(r.defaultVerdict), metrics.SourceFallback).Inc()

		return Outcome{Verdict: r.defaultVerdict, Handle: sub.Handle, Degraded: true}
	}

	metrics.Verdicts.WithLabelValues(string(verdict), metrics.SourceRemote).Inc()

	return Outcome{Verdict: verdict, Handle: sub.Handle}
}

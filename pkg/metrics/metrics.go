// Package metrics holds shared Prometheus instruments for the file scanning
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// Verdicts counts resolved verdicts by value and by how they were obtained
	// (blocklist, remote, fallback).
	Verdicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "filescan",
		Name:      "verdicts_total",
		Help:      "Resolved file verdicts by value and source.",
	}, []string{"verdict", "source"})

	// PollAttempts observes how many polls one resolve call needed before it
	// reached a terminal state or gave up.
	PollAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "filescan",
		Name:      "poll_attempts",
		Help:      "Number of analysis polls per resolve call.",
		Buckets:   []float64{1, 2, 3, 4, 5},
	})

	// RemoteErrors counts errors from the remote scanning service by kind.
	RemoteErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "filescan",
		Name:      "remote_errors_total",
		Help:      "Errors returned by the remote scanning service by semantic kind.",
	}, []string{"kind"})
)

// Verdict source label values.
const (
	SourceBlocklist = "blocklist"
	SourceRemote    = "remote"
	SourceFallback  = "fallback"
	SourceCache     = "cache"
)

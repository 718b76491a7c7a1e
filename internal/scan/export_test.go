package scan

import (
	"context"
	"time"
)

// OverridePollerSleep swaps the wait function of a Poller created by
// NewPoller so tests can observe wait durations without actually sleeping.
func OverridePollerSleep(p Poller, fn func(ctx context.Context, d time.Duration) error) {
	p.(*poller).sleep = fn
}

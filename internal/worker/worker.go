// Package worker hosts the River background workers of the service.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"filescan/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Start registers the rescan worker and starts a River client on the given
// pool. The returned client must be stopped by the caller during shutdown.
func Start(ctx context.Context, dbPool *pgxpool.Pool, rescan *RescanWorker) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, rescan)

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			// rescans poll a remote API with a tight quota, one at a time is plenty
			river.QueueDefault: {MaxWorkers: 1},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

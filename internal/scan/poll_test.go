package scan_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"filescan/internal/scan"
	"filescan/pkg/domain"
	"filescan/pkg/filescanner"
	mockfilescanner "filescan/pkg/filescanner/mock"
	"filescan/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testInterval = 8 * time.Second

// newPoller returns a poller whose sleeps are recorded instead of executed.
func newPoller(t *testing.T) (*mockfilescanner.MockClient, scan.Poller, *[]time.Duration) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mockfilescanner.NewMockClient(ctrl)
	p := scan.NewPoller(client, scan.PollerOptions{Interval: testInterval})

	var sleeps []time.Duration
	scan.OverridePollerSleep(p, func(_ context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)

		return nil
	})

	return client, p, &sleeps
}

func completedAnalysis(id string, malicious int) *filescanner.AnalysisReport {
	return &filescanner.AnalysisReport{
		ID:     id,
		Status: filescanner.StatusCompleted,
		Stats:  &domain.AnalysisStats{Malicious: malicious, Harmless: 60},
	}
}

func TestPoller_Poll_FingerprintHandleUsesEmbeddedStats(t *testing.T) {
	client, p, _ := newPoller(t)

	client.EXPECT().FileReport(gomock.Any(), testFP).Return(&filescanner.FileReport{
		ID:                testFP,
		LastAnalysisStats: &domain.AnalysisStats{Malicious: 3},
	}, nil)
	// no Analysis expectation: the embedded summary must short-circuit

	v, err := p.Poll(context.Background(), testFP)
	require.NoError(t, err)
	require.Equal(t, domain.VerdictMalicious, v)
}

func TestPoller_Poll_FingerprintHandleFollowsAnalysisID(t *testing.T) {
	client, p, _ := newPoller(t)

	gomock.InOrder(
		client.EXPECT().FileReport(gomock.Any(), testFP).Return(&filescanner.FileReport{
			ID:             testFP,
			LastAnalysisID: "an-1",
		}, nil),
		client.EXPECT().Analysis(gomock.Any(), "an-1").Return(completedAnalysis("an-1", 0), nil),
	)

	v, err := p.Poll(context.Background(), testFP)
	require.NoError(t, err)
	require.Equal(t, domain.VerdictClean, v)
}

func TestPoller_Poll_FingerprintHandleWithoutAnalysisIsPending(t *testing.T) {
	client, p, _ := newPoller(t)

	client.EXPECT().FileReport(gomock.Any(), testFP).
		Return(&filescanner.FileReport{ID: testFP}, nil)

	v, err := p.Poll(context.Background(), testFP)
	require.NoError(t, err)
	require.Equal(t, domain.VerdictPending, v)
}

func TestPoller_Poll_FingerprintHandleNotIngestedYetIsPending(t *testing.T) {
	client, p, _ := newPoller(t)

	client.EXPECT().FileReport(gomock.Any(), testFP).
		Return(nil, serrors.With(serrors.ErrNotFound, "file not found"))

	v, err := p.Poll(context.Background(), testFP)
	require.NoError(t, err)
	require.Equal(t, domain.VerdictPending, v)
}

func TestPoller_Poll_AnalysisHandleQueriesDirectly(t *testing.T) {
	client, p, _ := newPoller(t)

	client.EXPECT().Analysis(gomock.Any(), "an-1").Return(completedAnalysis("an-1", 0), nil)

	v, err := p.Poll(context.Background(), "an-1")
	require.NoError(t, err)
	require.Equal(t, domain.VerdictClean, v)
}

func TestPoller_Poll_NotAvailableYetIsPending(t *testing.T) {
	client, p, _ := newPoller(t)

	client.EXPECT().Analysis(gomock.Any(), "an-1").
		Return(nil, serrors.With(serrors.ErrAnalysisPending, "not available yet"))

	v, err := p.Poll(context.Background(), "an-1")
	require.NoError(t, err)
	require.Equal(t, domain.VerdictPending, v)
}

func TestPoller_PollWithRetry_CompletesAfterPending(t *testing.T) {
	client, p, sleeps := newPoller(t)

	gomock.InOrder(
		client.EXPECT().Analysis(gomock.Any(), "an-1").
			Return(&filescanner.AnalysisReport{ID: "an-1", Status: filescanner.StatusQueued}, nil),
		client.EXPECT().Analysis(gomock.Any(), "an-1").
			Return(&filescanner.AnalysisReport{ID: "an-1", Status: filescanner.StatusInProgress}, nil),
		client.EXPECT().Analysis(gomock.Any(), "an-1").Return(completedAnalysis("an-1", 0), nil),
	)

	v, err := p.PollWithRetry(context.Background(), "an-1", 3)
	require.NoError(t, err)
	require.Equal(t, domain.VerdictClean, v)
	// two waits between three polls, each at the configured interval
	require.Equal(t, []time.Duration{testInterval, testInterval}, *sleeps)
}

func TestPoller_PollWithRetry_ExhaustsBudget(t *testing.T) {
	client, p, sleeps := newPoller(t)

	const maxAttempts = 3
	client.EXPECT().Analysis(gomock.Any(), "an-1").
		Return(&filescanner.AnalysisReport{ID: "an-1", Status: filescanner.StatusQueued}, nil).
		Times(maxAttempts)

	v, err := p.PollWithRetry(context.Background(), "an-1", maxAttempts)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.Equal(t, domain.VerdictUnknown, v)
	require.Len(t, *sleeps, maxAttempts-1, "no wait after the final poll")
	for _, d := range *sleeps {
		require.GreaterOrEqual(t, d, testInterval)
	}
}

func TestPoller_PollWithRetry_RateLimitDoublesWait(t *testing.T) {
	client, p, sleeps := newPoller(t)

	gomock.InOrder(
		client.EXPECT().Analysis(gomock.Any(), "an-1").
			Return(nil, serrors.With(serrors.ErrRateLimited, "quota exceeded")),
		client.EXPECT().Analysis(gomock.Any(), "an-1").Return(completedAnalysis("an-1", 1), nil),
	)

	v, err := p.PollWithRetry(context.Background(), "an-1", 3)
	require.NoError(t, err)
	require.Equal(t, domain.VerdictMalicious, v)
	require.Equal(t, []time.Duration{2 * testInterval}, *sleeps)
}

func TestPoller_PollWithRetry_OtherErrorPropagatesImmediately(t *testing.T) {
	client, p, sleeps := newPoller(t)

	boom := errors.New("tls handshake failed")
	client.EXPECT().Analysis(gomock.Any(), "an-1").Return(nil, boom)

	v, err := p.PollWithRetry(context.Background(), "an-1", 3)
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
	require.Equal(t, domain.VerdictUnknown, v)
	require.Empty(t, *sleeps, "no retry after a hard failure")
}

func TestPoller_PollWithRetry_AbandonedOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockfilescanner.NewMockClient(ctrl)
	p := scan.NewPoller(client, scan.PollerOptions{Interval: testInterval})

	ctx, cancel := context.WithCancel(context.Background())
	scan.OverridePollerSleep(p, func(ctx context.Context, _ time.Duration) error {
		cancel()

		return ctx.Err()
	})

	client.EXPECT().Analysis(gomock.Any(), "an-1").
		Return(&filescanner.AnalysisReport{ID: "an-1", Status: filescanner.StatusQueued}, nil)

	v, err := p.PollWithRetry(ctx, "an-1", 3)
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, domain.VerdictUnknown, v)
}

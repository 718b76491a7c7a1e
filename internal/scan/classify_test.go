package scan_test

import (
	"testing"

	"filescan/internal/scan"
	"filescan/pkg/domain"
	"filescan/pkg/filescanner"

	"github.com/stretchr/testify/require"
)

func TestClassify_EveryBranch(t *testing.T) {
	tests := []struct {
		name string
		rep  *filescanner.AnalysisReport
		want domain.Verdict
	}{
		{
			name: "nil report is pending",
			rep:  nil,
			want: domain.VerdictPending,
		},
		{
			name: "queued is pending",
			rep:  &filescanner.AnalysisReport{Status: filescanner.StatusQueued},
			want: domain.VerdictPending,
		},
		{
			name: "in-progress is pending",
			rep:  &filescanner.AnalysisReport{Status: filescanner.StatusInProgress},
			want: domain.VerdictPending,
		},
		{
			name: "completed without stats is pending",
			rep:  &filescanner.AnalysisReport{Status: filescanner.StatusCompleted},
			want: domain.VerdictPending,
		},
		{
			name: "completed with malicious detections",
			rep: &filescanner.AnalysisReport{
				Status: filescanner.StatusCompleted,
				Stats:  &domain.AnalysisStats{Malicious: 2, Harmless: 60},
			},
			want: domain.VerdictMalicious,
		},
		{
			name: "completed with zero malicious detections",
			rep: &filescanner.AnalysisReport{
				Status: filescanner.StatusCompleted,
				Stats:  &domain.AnalysisStats{Suspicious: 1, Harmless: 70},
			},
			want: domain.VerdictClean,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, scan.Classify(tt.rep))
		})
	}
}

func TestClassifyStats(t *testing.T) {
	require.Equal(t, domain.VerdictMalicious, scan.ClassifyStats(domain.AnalysisStats{Malicious: 1}))
	require.Equal(t, domain.VerdictClean, scan.ClassifyStats(domain.AnalysisStats{}))
	// suspicious alone does not flip the verdict
	require.Equal(t, domain.VerdictClean, scan.ClassifyStats(domain.AnalysisStats{Suspicious: 5}))
}

package scan

import (
	"filescan/pkg/domain"
	"filescan/pkg/filescanner"
)

// Classify maps one remote analysis report to a verdict. A completed report
// with stats is terminal: malicious when the malicious-detector count is
// positive, clean otherwise. Everything else (nil report, queued or
// in-progress status, missing stats) is pending.
func Classify(rep *filescanner.AnalysisReport) domain.Verdict {
	if rep == nil || rep.Status != filescanner.StatusCompleted || rep.Stats == nil {
		return domain.VerdictPending
	}

	return ClassifyStats(*rep.Stats)
}

// ClassifyStats maps a per-detector summary to a terminal verdict.
func ClassifyStats(stats domain.AnalysisStats) domain.Verdict {
	if stats.Malicious > 0 {
		return domain.VerdictMalicious
	}

	return domain.VerdictClean
}

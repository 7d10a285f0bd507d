package merger

import (
	"math"
	"time"

	"github.com/bitrise-steplib/steps-merge-test-reports/report"
)

// reduceStats folds the statistics of every source report into dst, in
// source-list order. Counters are summed, start/end are reduced to the
// earliest start and latest end, and the derived percentages are recomputed
// over the merged totals.
func reduceStats(dst *report.Stats, sources []report.Report) {
	// Seed the running minimum with the current time and the running maximum
	// with the epoch floor, so any non-empty source list overrides both.
	start := time.Now()
	end := time.Unix(0, 0).UTC()

	for _, src := range sources {
		dst.Suites += src.Stats.Suites
		dst.Tests += src.Stats.Tests
		dst.Passes += src.Stats.Passes
		dst.Pending += src.Stats.Pending
		dst.Failures += src.Stats.Failures
		dst.Duration += src.Stats.Duration
		dst.TestsRegistered += src.Stats.TestsRegistered
		dst.Skipped += src.Stats.Skipped

		if src.Stats.Start.Before(start) {
			start = src.Stats.Start
		}
		if src.Stats.End.After(end) {
			end = src.Stats.End
		}
	}

	dst.Start = start
	dst.End = end

	// A zero testsRegistered denominator yields a non-finite percentage. That
	// is an observable output value, not an error.
	dst.PassPercent = report.Percent(percentOf(dst.Passes, dst.TestsRegistered))
	dst.PendingPercent = report.Percent(percentOf(dst.Pending, dst.TestsRegistered))
	dst.PassPercentClass = classifyPercent(float64(dst.PassPercent))
	dst.PendingPercentClass = classifyPercent(float64(dst.PendingPercent))
}

// percentOf returns count/total as a percentage rounded to two decimal places.
func percentOf(count, total int) float64 {
	percent := float64(count) * 100 / float64(total)
	return math.Round(percent*100) / 100
}

// classifyPercent maps a percentage to its classification label. The bounds
// are exclusive: exactly 80 is warning and exactly 50 is danger. NaN fails
// every comparison and falls through to danger.
func classifyPercent(percent float64) string {
	switch {
	case percent > 80:
		return report.ClassSuccess
	case percent > 50:
		return report.ClassWarning
	default:
		return report.ClassDanger
	}
}

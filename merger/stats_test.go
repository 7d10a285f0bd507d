package merger

import (
	"math"
	"testing"
	"time"

	"github.com/bitrise-steplib/steps-merge-test-reports/report"
	"github.com/stretchr/testify/assert"
)

func Test_GivenThreeSources_WhenReducingStats_ThenEveryCounterIsTheSum(t *testing.T) {
	// Given
	sources := []report.Report{
		sourceReport(report.Stats{Suites: 1, Tests: 2, Passes: 1, Failures: 1, TestsRegistered: 2, Duration: 2500}),
		sourceReport(report.Stats{Suites: 2, Tests: 1, Passes: 1, TestsRegistered: 1, Duration: 2000}),
		sourceReport(report.Stats{Suites: 1, Tests: 2, Passes: 1, Failures: 1, TestsRegistered: 2, Duration: 3000, Skipped: 1, Pending: 0}),
	}
	var stats report.Stats

	// When
	reduceStats(&stats, sources)

	// Then
	assert.Equal(t, 4, stats.Suites)
	assert.Equal(t, 5, stats.Tests)
	assert.Equal(t, 3, stats.Passes)
	assert.Equal(t, 2, stats.Failures)
	assert.Equal(t, 0, stats.Pending)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 5, stats.TestsRegistered)
	assert.Equal(t, int64(7500), stats.Duration)
	assert.Equal(t, report.Percent(60), stats.PassPercent)
	assert.Equal(t, report.ClassWarning, stats.PassPercentClass)
	assert.Equal(t, report.Percent(0), stats.PendingPercent)
	assert.Equal(t, report.ClassDanger, stats.PendingPercentClass)
}

func Test_GivenSourcesInAnyOrder_WhenReducingStats_ThenStartIsTheEarliestAndEndIsTheLatest(t *testing.T) {
	// Given
	earliest := time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC)
	middle := time.Date(2023, 4, 1, 10, 5, 0, 0, time.UTC)
	latest := time.Date(2023, 4, 1, 10, 12, 0, 0, time.UTC)

	ordered := []report.Report{
		sourceReport(report.Stats{Start: earliest, End: middle}),
		sourceReport(report.Stats{Start: middle, End: latest}),
	}
	reversed := []report.Report{ordered[1], ordered[0]}

	for _, sources := range [][]report.Report{ordered, reversed} {
		var stats report.Stats

		// When
		reduceStats(&stats, sources)

		// Then
		assert.Equal(t, earliest, stats.Start)
		assert.Equal(t, latest, stats.End)
	}
}

func Test_GivenNoSources_WhenReducingStats_ThenStartFallsBackToNowAndEndToEpoch(t *testing.T) {
	// Given
	var stats report.Stats
	before := time.Now()

	// When
	reduceStats(&stats, nil)

	// Then
	assert.False(t, stats.Start.Before(before))
	assert.Equal(t, time.Unix(0, 0).UTC(), stats.End)
}

func Test_GivenZeroTestsRegistered_WhenReducingStats_ThenPercentagesAreNaNAndClassifiedAsDanger(t *testing.T) {
	// Given
	sources := []report.Report{
		sourceReport(report.Stats{Suites: 1}),
	}
	var stats report.Stats

	// When
	reduceStats(&stats, sources)

	// Then
	assert.True(t, math.IsNaN(float64(stats.PassPercent)))
	assert.True(t, math.IsNaN(float64(stats.PendingPercent)))
	assert.Equal(t, report.ClassDanger, stats.PassPercentClass)
	assert.Equal(t, report.ClassDanger, stats.PendingPercentClass)
}

func Test_GivenUnevenTotals_WhenReducingStats_ThenPercentagesAreRoundedToTwoDecimals(t *testing.T) {
	// Given
	sources := []report.Report{
		sourceReport(report.Stats{Passes: 1, Pending: 2, TestsRegistered: 3}),
	}
	var stats report.Stats

	// When
	reduceStats(&stats, sources)

	// Then
	assert.Equal(t, report.Percent(33.33), stats.PassPercent)
	assert.Equal(t, report.Percent(66.67), stats.PendingPercent)
}

func Test_GivenPercentages_WhenClassifying_ThenThresholdsAreExclusive(t *testing.T) {
	testCases := []struct {
		percent       float64
		expectedClass string
	}{
		{100, report.ClassSuccess},
		{81, report.ClassSuccess},
		{80, report.ClassWarning},
		{51, report.ClassWarning},
		{50, report.ClassDanger},
		{0, report.ClassDanger},
		{math.NaN(), report.ClassDanger},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expectedClass, classifyPercent(testCase.percent), "classifyPercent(%v)", testCase.percent)
	}
}

func sourceReport(stats report.Stats) report.Report {
	return report.Report{Stats: stats}
}

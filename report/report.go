package report

import (
	"encoding/json"
	"math"
	"time"
)

// FormatVersion is the report format version the step produces.
const FormatVersion = "2.1.0"

// Test states as they appear in report documents.
const (
	StatePassed  = "passed"
	StateFailed  = "failed"
	StatePending = "pending"
	StateSkipped = "skipped"
)

// Percentage classification labels.
const (
	ClassSuccess = "success"
	ClassWarning = "warning"
	ClassDanger  = "danger"
)

// Report is a single test report document: the aggregate statistics and the
// forest of top-level suites. Source reports are parsed into this shape and
// the merged report is written from it.
type Report struct {
	Version string      `json:"version,omitempty"`
	Stats   Stats       `json:"stats"`
	Suites  SuiteForest `json:"suites"`
}

// Stats holds the aggregate counters of a report. Pass and pending
// percentages are derived from the counters, with testsRegistered as the
// denominator for both.
type Stats struct {
	Suites              int       `json:"suites"`
	Tests               int       `json:"tests"`
	Passes              int       `json:"passes"`
	Pending             int       `json:"pending"`
	Failures            int       `json:"failures"`
	Start               time.Time `json:"start"`
	End                 time.Time `json:"end"`
	Duration            int64     `json:"duration"`
	TestsRegistered     int       `json:"testsRegistered"`
	Skipped             int       `json:"skipped"`
	PassPercent         Percent   `json:"passPercent"`
	PendingPercent      Percent   `json:"pendingPercent"`
	PassPercentClass    string    `json:"passPercentClass"`
	PendingPercentClass string    `json:"pendingPercentClass"`
}

// SuiteForest is the ordered collection of top-level suites within a report.
// The merged report's forest carries a freshly generated identifier, source
// forest identifiers are discarded on merge.
type SuiteForest struct {
	UUID   string  `json:"uuid"`
	Suites []Suite `json:"suites"`
}

// Suite is a named grouping of tests. Nesting is single-child: a suite has at
// most one sub-suite. This is the wire format's invariant, not a general
// children array.
type Suite struct {
	UUID     string `json:"uuid"`
	Title    string `json:"title"`
	File     string `json:"file"`
	Duration int64  `json:"duration"`
	Tests    []Test `json:"tests"`
	Suite    *Suite `json:"suite,omitempty"`
}

// Test is a single test execution record.
type Test struct {
	Title    string `json:"title"`
	State    string `json:"state"`
	Duration int64  `json:"duration"`
	TimedOut bool   `json:"timedOut"`
}

// Percent is a derived percentage statistic. A zero testsRegistered
// denominator yields a non-finite value, which the report format serializes
// as null. The in-memory value stays non-finite so callers can observe it.
type Percent float64

// MarshalJSON writes non-finite percentages as null.
func (p Percent) MarshalJSON() ([]byte, error) {
	f := float64(p)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON reads null back as NaN.
func (p *Percent) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Percent(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = Percent(f)
	return nil
}

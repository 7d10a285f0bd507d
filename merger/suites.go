package merger

import "github.com/bitrise-steplib/steps-merge-test-reports/report"

// mergeSuites relocates every source report's top-level suites into dst, in
// source-list order, keeping each source's own suite order. The destination
// forest always gets the freshly generated identifier; source forest
// identifiers are discarded. Sources with an empty forest contribute nothing.
func mergeSuites(dst *report.SuiteForest, sources []report.Report, identifier string) {
	dst.UUID = identifier

	for _, src := range sources {
		for i := range src.Suites.Suites {
			suite := src.Suites.Suites[i]
			normalizeTests(&suite)
			dst.Suites = append(dst.Suites, suite)
		}
	}
}

// normalizeTests clears the timedOut flag on every test owned by the suite
// and by its nested sub-suites. The flag is a single-run artifact with no
// meaning once independent runs are combined into one document.
func normalizeTests(suite *report.Suite) {
	for i := range suite.Tests {
		suite.Tests[i].TimedOut = false
	}

	if suite.Suite != nil {
		normalizeTests(suite.Suite)
	}
}

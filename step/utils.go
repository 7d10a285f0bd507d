package step

import "github.com/bitrise-io/go-utils/colorstring"

func (s ReportMergeRunner) printMergedReportLocationHint() {
	s.logger.Printf(colorstring.Magenta(`
The merged report path is available in the $BITRISE_MERGED_TEST_REPORT_PATH
environment variable.

If you have the Deploy to Bitrise.io step (after this step),
the exported artifacts will be attached to your build!`))
}

package output

import (
	"path/filepath"
	"strings"

	"github.com/bitrise-io/bitrise/configs"
	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-merge-test-reports/testaddon"
)

const (
	mergeResultEnvVarKey      = "BITRISE_TEST_REPORT_MERGE_RESULT"
	mergedReportPathEnvVarKey = "BITRISE_MERGED_TEST_REPORT_PATH"
	sourceReportsZipEnvVarKey = "BITRISE_SOURCE_REPORTS_ZIP_PATH"

	sourceReportsZipName = "source_test_reports.zip"
)

// Exporter ...
type Exporter interface {
	ExportMergeResult(failed bool)
	ExportMergedReport(mergedReportPath string) error
	ExportSourceReports(deployDir string, sourceReportPaths []string) error
}

type exporter struct {
	envRepository     env.Repository
	logger            log.Logger
	outputExporter    export.Exporter
	testAddonExporter testaddon.Exporter
}

// NewExporter ...
func NewExporter(envRepository env.Repository, logger log.Logger, outputExporter export.Exporter, testAddonExporter testaddon.Exporter) Exporter {
	return &exporter{
		envRepository:     envRepository,
		logger:            logger,
		outputExporter:    outputExporter,
		testAddonExporter: testAddonExporter,
	}
}

func (e exporter) ExportMergeResult(failed bool) {
	status := "succeeded"
	if failed {
		status = "failed"
	}
	if err := e.envRepository.Set(mergeResultEnvVarKey, status); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", mergeResultEnvVarKey, err)
	}
}

func (e exporter) ExportMergedReport(mergedReportPath string) error {
	if err := e.envRepository.Set(mergedReportPathEnvVarKey, mergedReportPath); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", mergedReportPathEnvVarKey, err)
	}

	// export the merged report for the testing addon
	if addonResultPath := e.envRepository.Get(configs.BitrisePerStepTestResultDirEnvKey); len(addonResultPath) > 0 {
		e.logger.Println()
		e.logger.Infof("Exporting merged report to the test addon")

		if err := e.testAddonExporter.CopyAndSaveMetadata(testaddon.AddonCopy{
			SourceReportPath:      mergedReportPath,
			TargetAddonPath:       addonResultPath,
			TargetAddonBundleName: bundleName(mergedReportPath),
		}); err != nil {
			e.logger.Warnf("Failed to export to the test addon: %s", err)
		}
	}

	return nil
}

func (e exporter) ExportSourceReports(deployDir string, sourceReportPaths []string) error {
	zipPath := filepath.Join(deployDir, sourceReportsZipName)
	if err := e.outputExporter.ExportOutputFilesZip(sourceReportsZipEnvVarKey, sourceReportPaths, zipPath); err != nil {
		return err
	}

	return nil
}

func bundleName(mergedReportPath string) string {
	base := filepath.Base(mergedReportPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

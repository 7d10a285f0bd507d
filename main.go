package main

import (
	"os"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-merge-test-reports/merger"
	"github.com/bitrise-steplib/steps-merge-test-reports/output"
	"github.com/bitrise-steplib/steps-merge-test-reports/report"
	"github.com/bitrise-steplib/steps-merge-test-reports/step"
	"github.com/bitrise-steplib/steps-merge-test-reports/testaddon"
	"github.com/bitrise-steplib/steps-merge-test-reports/uuidprovider"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.NewLogger()
	mergeRunner := createStep(logger)

	config, err := mergeRunner.ProcessConfig()
	if err != nil {
		logger.Errorf("Process config: %s", err)
		return 1
	}

	result, runErr := mergeRunner.Run(config)
	if runErr != nil {
		logger.Errorf("Run: %s", runErr)
	}

	if err := mergeRunner.ExportOutputs(config, result, runErr != nil); err != nil {
		logger.Errorf("Export outputs: %s", err)
		return 1
	}

	if runErr != nil {
		return 1
	}

	return 0
}

func createStep(logger log.Logger) step.ReportMergeRunner {
	envRepository := env.NewRepository()
	inputParser := stepconf.NewInputParser(envRepository)
	pathModifier := pathutil.NewPathModifier()
	fileManager := fileutil.NewFileManager()

	reportReader := report.NewFileReader(fileManager, logger)
	reportWriter := report.NewFileWriter(fileManager, logger)
	templateProvider := report.NewTemplateProvider()
	identifierProvider := uuidprovider.NewProvider()
	reportMerger := merger.NewMerger(reportReader, reportWriter, templateProvider, identifierProvider, logger)

	commandFactory := command.NewFactory(envRepository)
	outputExporter := export.NewExporter(commandFactory)
	testAddonExporter := testaddon.NewExporter(testaddon.NewTestAddon(logger))
	exporter := output.NewExporter(envRepository, logger, outputExporter, testAddonExporter)

	return step.NewReportMergeRunner(inputParser, logger, reportMerger, pathModifier, exporter)
}

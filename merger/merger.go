// Package merger implements the report aggregation core: it validates the
// merge inputs, folds the statistics of every source report into one
// aggregate, relocates the source suite forests into the destination report
// and hands the result to the writer collaborator.
package merger

import (
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-merge-test-reports/report"
	"github.com/bitrise-steplib/steps-merge-test-reports/uuidprovider"
	"golang.org/x/sync/errgroup"
)

// Merger merges N source reports into one destination report.
type Merger interface {
	Merge(sources any, destination any) error
}

type merger struct {
	reader             report.Reader
	writer             report.Writer
	templateProvider   report.TemplateProvider
	identifierProvider uuidprovider.Provider
	logger             log.Logger
}

// NewMerger ...
func NewMerger(reader report.Reader, writer report.Writer, templateProvider report.TemplateProvider, identifierProvider uuidprovider.Provider, logger log.Logger) Merger {
	return merger{
		reader:             reader,
		writer:             writer,
		templateProvider:   templateProvider,
		identifierProvider: identifierProvider,
		logger:             logger,
	}
}

// Merge validates the inputs, loads every source report, merges them into a
// fresh destination report and writes it to the destination. Validation
// happens entirely before any load or write, so a validation failure
// guarantees no output was produced or overwritten. Reader and writer
// failures abort the merge and propagate unmodified.
func (m merger) Merge(sources any, destination any) error {
	sourcePaths, err := validateSources(sources)
	if err != nil {
		return err
	}

	destinationPath, err := validateDestination(destination)
	if err != nil {
		return err
	}

	sourceReports, err := m.loadReports(sourcePaths)
	if err != nil {
		return err
	}

	merged := m.templateProvider.NewReport()
	reduceStats(&merged.Stats, sourceReports)
	mergeSuites(&merged.Suites, sourceReports, m.identifierProvider.NewIdentifier())

	m.logger.Debugf("Merged %d reports: %d suites, %d tests, pass percent: %.2f", len(sourceReports), len(merged.Suites.Suites), merged.Stats.Tests, merged.Stats.PassPercent)

	return m.writer.Write(destinationPath, merged)
}

// loadReports reads the source reports in parallel. Results are materialized
// by index, so the reduction and merge still see them in source-list order.
// The first read failure aborts the whole operation.
func (m merger) loadReports(paths []string) ([]report.Report, error) {
	reports := make([]report.Report, len(paths))

	var g errgroup.Group
	for i, pth := range paths {
		i, pth := i, pth
		g.Go(func() error {
			rep, err := m.reader.Read(pth)
			if err != nil {
				return err
			}
			reports[i] = rep

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

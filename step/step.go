package step

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-merge-test-reports/merger"
	"github.com/bitrise-steplib/steps-merge-test-reports/output"
	"github.com/bmatcuk/doublestar/v4"
	shellquote "github.com/kballard/go-shellquote"
)

const mergedReportExtension = ".json"

// Input ...
type Input struct {
	ReportPaths string `env:"report_paths,required"`
	OutputPath  string `env:"output_path,required"`

	// Output export
	ExportRawReports bool   `env:"export_raw_reports,opt[true,false]"`
	DeployDir        string `env:"BITRISE_DEPLOY_DIR"`

	// Debug
	Verbose bool `env:"verbose,opt[yes,no]"`
}

// Config ...
type Config struct {
	ReportPaths []string
	OutputPath  string

	ExportRawReports bool
	DeployDir        string
}

// Result ...
type Result struct {
	MergedReportPath  string
	SourceReportPaths []string
}

// ReportMergeRunner ...
type ReportMergeRunner struct {
	inputParser    stepconf.InputParser
	logger         log.Logger
	merger         merger.Merger
	pathModifier   pathutil.PathModifier
	outputExporter output.Exporter
}

// NewReportMergeRunner ...
func NewReportMergeRunner(inputParser stepconf.InputParser, logger log.Logger, reportMerger merger.Merger, pathModifier pathutil.PathModifier, outputExporter output.Exporter) ReportMergeRunner {
	return ReportMergeRunner{
		inputParser:    inputParser,
		logger:         logger,
		merger:         reportMerger,
		pathModifier:   pathModifier,
		outputExporter: outputExporter,
	}
}

// ProcessConfig ...
func (s ReportMergeRunner) ProcessConfig() (Config, error) {
	var input Input
	if err := s.inputParser.Parse(&input); err != nil {
		return Config{}, err
	}

	stepconf.Print(input)
	s.logger.Println()

	s.logger.EnableDebugLog(input.Verbose)

	patterns, err := shellquote.Split(input.ReportPaths)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse report paths (%s): %s", input.ReportPaths, err)
	}

	reportPaths, err := s.expandReportPaths(patterns)
	if err != nil {
		return Config{}, err
	}

	outputPath, err := s.pathModifier.AbsPath(input.OutputPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute output path, error: %s", err)
	}
	if filepath.Ext(outputPath) != mergedReportExtension {
		return Config{}, fmt.Errorf("invalid output path (%s), extension should be %s", outputPath, mergedReportExtension)
	}

	return Config{
		ReportPaths: reportPaths,
		OutputPath:  outputPath,

		ExportRawReports: input.ExportRawReports,
		DeployDir:        input.DeployDir,
	}, nil
}

// Run ...
func (s ReportMergeRunner) Run(cfg Config) (Result, error) {
	s.logger.Infof("Merging %d test reports", len(cfg.ReportPaths))
	for _, pth := range cfg.ReportPaths {
		s.logger.Printf("- %s", pth)
	}
	s.logger.Println()

	if err := s.merger.Merge(cfg.ReportPaths, cfg.OutputPath); err != nil {
		return Result{}, fmt.Errorf("failed to merge test reports: %w", err)
	}

	s.logger.Donef("Merged report saved to: %s", cfg.OutputPath)

	return Result{
		MergedReportPath:  cfg.OutputPath,
		SourceReportPaths: cfg.ReportPaths,
	}, nil
}

// ExportOutputs ...
func (s ReportMergeRunner) ExportOutputs(cfg Config, result Result, failed bool) error {
	s.outputExporter.ExportMergeResult(failed)

	if result.MergedReportPath == "" {
		return nil
	}

	if err := s.outputExporter.ExportMergedReport(result.MergedReportPath); err != nil {
		return err
	}

	if cfg.ExportRawReports {
		if cfg.DeployDir == "" {
			s.logger.Warnf("Raw report export requested, but no deploy dir is available")
		} else if err := s.outputExporter.ExportSourceReports(cfg.DeployDir, result.SourceReportPaths); err != nil {
			s.logger.Warnf("Failed to export source reports: %s", err)
		}
	}

	s.printMergedReportLocationHint()

	return nil
}

// expandReportPaths resolves each pattern to absolute paths, expanding glob
// patterns. Glob matches are sorted so shard ordering is deterministic.
// Literal paths pass through untouched, a missing file surfaces later as a
// read error instead of being silently dropped.
func (s ReportMergeRunner) expandReportPaths(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		absPattern, err := s.pathModifier.AbsPath(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute report path (%s), error: %s", pattern, err)
		}

		if !strings.ContainsAny(absPattern, "*?[{") {
			paths = append(paths, absPattern)
			continue
		}

		matches, err := doublestar.FilepathGlob(absPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid report path pattern (%s): %s", pattern, err)
		}
		if len(matches) == 0 {
			s.logger.Warnf("No reports matched pattern: %s", pattern)
		}

		sort.Strings(matches)
		paths = append(paths, matches...)
	}

	return paths, nil
}

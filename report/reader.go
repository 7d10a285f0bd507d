package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/hashicorp/go-version"
)

// Reports generated by format versions outside this range are merged anyway,
// with a warning.
var supportedFormatVersions = version.MustConstraints(version.NewConstraint(">= 1.0.0, < 3.0.0"))

// Reader loads a parsed report document from a source identifier.
type Reader interface {
	Read(pth string) (Report, error)
}

type fileReader struct {
	fileManager fileutil.FileManager
	logger      log.Logger
}

// NewFileReader creates a Reader that loads report documents from the filesystem.
func NewFileReader(fileManager fileutil.FileManager, logger log.Logger) Reader {
	return fileReader{
		fileManager: fileManager,
		logger:      logger,
	}
}

func (r fileReader) Read(pth string) (Report, error) {
	file, err := r.fileManager.Open(pth)
	if err != nil {
		return Report{}, fmt.Errorf("failed to open report (%s): %w", pth, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			r.logger.Warnf("Failed to close report (%s): %s", pth, err)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read report (%s): %w", pth, err)
	}

	if err := ValidateDocument(data); err != nil {
		return Report{}, fmt.Errorf("invalid report document (%s): %w", pth, err)
	}

	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return Report{}, fmt.Errorf("failed to parse report (%s): %w", pth, err)
	}

	r.checkFormatVersion(pth, rep.Version)

	return rep, nil
}

func (r fileReader) checkFormatVersion(pth, raw string) {
	if raw == "" {
		return
	}

	v, err := version.NewVersion(raw)
	if err != nil {
		r.logger.Warnf("Report (%s) has an unparseable format version (%s)", pth, raw)
		return
	}

	if !supportedFormatVersions.Check(v) {
		r.logger.Warnf("Report (%s) was generated with an unsupported format version (%s), merging it anyway", pth, raw)
	}
}

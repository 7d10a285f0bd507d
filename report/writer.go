package report

import (
	"encoding/json"
	"fmt"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
)

// Writer persists a merged report at the destination identifier, overwriting
// any existing content.
type Writer interface {
	Write(pth string, rep Report) error
}

type fileWriter struct {
	fileManager fileutil.FileManager
	logger      log.Logger
}

// NewFileWriter creates a Writer that persists report documents to the filesystem.
func NewFileWriter(fileManager fileutil.FileManager, logger log.Logger) Writer {
	return fileWriter{
		fileManager: fileManager,
		logger:      logger,
	}
}

func (w fileWriter) Write(pth string, rep Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode merged report: %w", err)
	}

	if err := w.fileManager.Write(pth, string(data), 0644); err != nil {
		return fmt.Errorf("failed to write merged report (%s): %w", pth, err)
	}

	w.logger.Debugf("Merged report written to %s (%d bytes)", pth, len(data))

	return nil
}

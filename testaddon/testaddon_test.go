package testaddon

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GivenNormalBundleName_WhenExport_ThenCreatesOutputStructure(t *testing.T) {
	runTest(t, "merged", "merged")
}

func Test_GivenBundleNameWithSpecialCharacters_WhenExport_ThenReplacesSpecialCharacters(t *testing.T) {
	runTest(t, "W/eir/d:Na::me/", "W-eir-d-Na--me-")
}

func runTest(t *testing.T, bundleName string, expectedBundleName string) {
	// Given
	reportPath, outputDir := prepareArtifacts(t)

	exporter := NewExporter(NewTestAddon(log.NewLogger()))

	// When
	err := exporter.CopyAndSaveMetadata(AddonCopy{
		SourceReportPath:      reportPath,
		TargetAddonPath:       outputDir,
		TargetAddonBundleName: bundleName,
	})

	// Then
	assert.NoError(t, err)

	bundleDir := filepath.Join(outputDir, expectedBundleName)
	assert.FileExists(t, filepath.Join(bundleDir, filepath.Base(reportPath)))

	metadata, err := os.ReadFile(filepath.Join(bundleDir, "test-info.json"))
	require.NoError(t, err)

	var parsed map[string]string
	require.NoError(t, json.Unmarshal(metadata, &parsed))
	assert.Equal(t, expectedBundleName, parsed["test-name"])
}

func prepareArtifacts(t *testing.T) (string, string) {
	t.Helper()

	reportPath := filepath.Join(t.TempDir(), "merged.json")
	require.NoError(t, os.WriteFile(reportPath, []byte(`{"stats": {}, "suites": {}}`), 0600))

	return reportPath, t.TempDir()
}

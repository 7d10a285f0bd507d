package report

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GivenMergedReport_WhenWriting_ThenTheFileParsesBackToTheSameReport(t *testing.T) {
	// Given
	pth := filepath.Join(t.TempDir(), "merged.json")
	writer := NewFileWriter(fileutil.NewFileManager(), log.NewLogger())

	rep := Report{
		Version: FormatVersion,
		Stats:   Stats{Tests: 3, Passes: 3, TestsRegistered: 3, PassPercent: 100, PassPercentClass: ClassSuccess, PendingPercentClass: ClassDanger},
		Suites:  SuiteForest{UUID: "forest-id", Suites: []Suite{{Title: "login"}}},
	}

	// When
	err := writer.Write(pth, rep)

	// Then
	require.NoError(t, err)

	data, err := os.ReadFile(pth)
	require.NoError(t, err)

	var parsed Report
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, rep, parsed)
}

func Test_GivenExistingFileAtDestination_WhenWriting_ThenItIsOverwritten(t *testing.T) {
	// Given
	pth := filepath.Join(t.TempDir(), "merged.json")
	require.NoError(t, os.WriteFile(pth, []byte("old content"), 0600))

	writer := NewFileWriter(fileutil.NewFileManager(), log.NewLogger())

	// When
	err := writer.Write(pth, Report{Version: FormatVersion})

	// Then
	require.NoError(t, err)

	data, err := os.ReadFile(pth)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old content")
}

func Test_GivenNonFinitePercentages_WhenWriting_ThenTheDocumentIsStillValidJSON(t *testing.T) {
	// Given
	pth := filepath.Join(t.TempDir(), "merged.json")
	writer := NewFileWriter(fileutil.NewFileManager(), log.NewLogger())

	rep := Report{
		Stats: Stats{
			PassPercent:    Percent(math.NaN()),
			PendingPercent: Percent(math.NaN()),
		},
	}

	// When
	err := writer.Write(pth, rep)

	// Then
	require.NoError(t, err)

	data, err := os.ReadFile(pth)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

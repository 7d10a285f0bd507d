package report

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GivenNaNPercent_WhenMarshaling_ThenWritesNull(t *testing.T) {
	// Given
	stats := Stats{
		PassPercent:    Percent(math.NaN()),
		PendingPercent: Percent(math.Inf(1)),
	}

	// When
	data, err := json.Marshal(stats)

	// Then
	require.NoError(t, err)
	assert.Contains(t, string(data), `"passPercent":null`)
	assert.Contains(t, string(data), `"pendingPercent":null`)
}

func Test_GivenNullPercent_WhenUnmarshaling_ThenReadsNaN(t *testing.T) {
	// Given
	data := []byte(`{"passPercent":null,"pendingPercent":12.5}`)

	// When
	var stats Stats
	err := json.Unmarshal(data, &stats)

	// Then
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(stats.PassPercent)))
	assert.Equal(t, Percent(12.5), stats.PendingPercent)
}

func Test_GivenNestedSuites_WhenRoundtripping_ThenTheSingleChildChainSurvives(t *testing.T) {
	// Given
	rep := Report{
		Version: FormatVersion,
		Suites: SuiteForest{
			UUID: "forest-id",
			Suites: []Suite{
				{
					Title: "outer",
					Tests: []Test{{Title: "test a", State: StatePassed, Duration: 120}},
					Suite: &Suite{
						Title: "inner",
						Tests: []Test{{Title: "test b", State: StateFailed, Duration: 80, TimedOut: true}},
					},
				},
			},
		},
	}

	// When
	data, err := json.Marshal(rep)
	require.NoError(t, err)

	var parsed Report
	err = json.Unmarshal(data, &parsed)

	// Then
	require.NoError(t, err)
	require.Len(t, parsed.Suites.Suites, 1)
	outer := parsed.Suites.Suites[0]
	require.NotNil(t, outer.Suite)
	assert.Equal(t, "inner", outer.Suite.Title)
	assert.Nil(t, outer.Suite.Suite)
	assert.True(t, outer.Suite.Tests[0].TimedOut)
}

func Test_GivenTemplateProvider_WhenCreatingAReport_ThenItIsZeroValuedWithAnEmptyForest(t *testing.T) {
	// When
	rep := NewTemplateProvider().NewReport()

	// Then
	assert.Equal(t, FormatVersion, rep.Version)
	assert.Equal(t, Stats{}, rep.Stats)
	assert.Empty(t, rep.Suites.UUID)
	assert.Empty(t, rep.Suites.Suites)
}

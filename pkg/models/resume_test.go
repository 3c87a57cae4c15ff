package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsDeep(t *testing.T) {
	original := DefaultResume()
	clone := original.Clone()

	require.NotEmpty(t, clone.Skills)
	clone.Skills[0].Name = "Changed"
	clone.Experience[0].Company = "Changed Co"

	assert.NotEqual(t, clone.Skills[0].Name, original.Skills[0].Name)
	assert.NotEqual(t, clone.Experience[0].Company, original.Experience[0].Company)
}

func TestRecordJSONShape(t *testing.T) {
	record := DefaultResume()

	data, err := json.Marshal(record)
	require.NoError(t, err)

	// Wire format matches the snapshot shape the web editor stores
	for _, key := range []string{`"fullName"`, `"linkedin"`, `"experience"`, `"startDate"`, `"fieldOfStudy"`} {
		assert.Contains(t, string(data), key)
	}

	var back ResumeRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, record, back)
}

func TestDefaultResume(t *testing.T) {
	record := DefaultResume()

	assert.Equal(t, "Alex Morgan", record.FullName)
	require.NotEmpty(t, record.Experience)
	assert.True(t, record.Experience[0].Current)
	assert.NotEmpty(t, record.Education)
	assert.NotEmpty(t, record.Skills)

	// Each call returns an independent record
	other := DefaultResume()
	other.Skills[0].Name = "Changed"
	assert.NotEqual(t, other.Skills[0].Name, DefaultResume().Skills[0].Name)
}

func TestATSAnalysisJSON(t *testing.T) {
	analysis := ATSAnalysis{
		Score:           82,
		MissingKeywords: []string{"Kubernetes"},
		Suggestions:     []string{"Mention container orchestration experience."},
	}

	data, err := json.Marshal(analysis)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"missingKeywords"`)
	assert.Contains(t, string(data), `"score":82`)
}

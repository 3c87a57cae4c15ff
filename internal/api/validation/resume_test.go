package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/pkg/models"
)

func TestDecodeListItemAssignsID(t *testing.T) {
	item, err := DecodeListItem(ListSkills, json.RawMessage(`{"name": "Go", "level": "Expert"}`))
	require.NoError(t, err)

	skill, ok := item.(models.Skill)
	require.True(t, ok)
	assert.NotEmpty(t, skill.ID)
	assert.Equal(t, "Go", skill.Name)
}

func TestDecodeListItemKeepsExplicitID(t *testing.T) {
	item, err := DecodeListItem(ListExperience, json.RawMessage(`{"id": "exp-7", "company": "Acme"}`))
	require.NoError(t, err)

	exp, ok := item.(models.WorkExperience)
	require.True(t, ok)
	assert.Equal(t, "exp-7", exp.ID)
}

func TestDecodeListItemRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeListItem(ListProjects, json.RawMessage(`{"name": "Tool", "stars": 12}`))
	assert.Error(t, err)
}

func TestDecodeListItemUnknownList(t *testing.T) {
	_, err := DecodeListItem("awards", json.RawMessage(`{}`))
	assert.Error(t, err)
}

func TestDecodeItemField(t *testing.T) {
	value, err := DecodeItemField(ListExperience, "current", json.RawMessage(`true`))
	require.NoError(t, err)
	assert.Equal(t, true, value)

	value, err = DecodeItemField(ListExperience, "company", json.RawMessage(`"Acme"`))
	require.NoError(t, err)
	assert.Equal(t, "Acme", value)

	_, err = DecodeItemField(ListExperience, "current", json.RawMessage(`"yes"`))
	assert.Error(t, err)

	_, err = DecodeItemField(ListSkills, "name", json.RawMessage(`42`))
	assert.Error(t, err)
}

func TestKnownItemField(t *testing.T) {
	assert.True(t, KnownItemField(ListExperience, "description"))
	assert.True(t, KnownItemField(ListSkills, "level"))
	assert.False(t, KnownItemField(ListSkills, "years"))
	assert.False(t, KnownItemField(ListEducation, "company"))
}

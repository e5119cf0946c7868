package fields

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignments(t *testing.T) {
	assignments, err := ParseAssignments([]string{
		"Summary=Fix the build",
		"Labels=a,b",
		`Flags=["Red","Blue"]`,
		"Note=key=value stays intact",
	})
	require.NoError(t, err)
	require.Len(t, assignments, 4)

	assert.Equal(t, "Summary", assignments[0].Name)
	assert.Equal(t, "Fix the build", assignments[0].Value)
	assert.Equal(t, "a,b", assignments[1].Value)
	assert.Equal(t, []interface{}{"Red", "Blue"}, assignments[2].Value)
	assert.Equal(t, "key=value stays intact", assignments[3].Value)
}

func TestParseAssignmentsRejectsMalformed(t *testing.T) {
	_, err := ParseAssignments([]string{"no-equals-here"})
	require.Error(t, err)

	_, err = ParseAssignments([]string{"=value"})
	require.Error(t, err)
}

func TestParseAssignmentsKeepsInvalidJSONAsString(t *testing.T) {
	assignments, err := ParseAssignments([]string{"Flags=[not json"})
	require.NoError(t, err)

	assert.Equal(t, "[not json", assignments[0].Value)
}

func TestPipelinePrepareCollectsAllFailures(t *testing.T) {
	calls := 0
	cache := NewSchemaCache(countingProvider(&calls, testSchema()))
	pipeline := NewPipeline(cache, 0)

	assignments, err := ParseAssignments([]string{
		"Summary=Fix the build",
		"Sevrity=Critical",
		"Severity=Unheard Of",
		"Priority=High",
	})
	require.NoError(t, err)

	prepared, failures, err := pipeline.Prepare(context.Background(), "PROJ", "Bug", assignments)
	require.NoError(t, err)

	require.Len(t, prepared, 2)
	assert.Equal(t, "summary", prepared[0].ID)
	assert.Equal(t, "Fix the build", prepared[0].Value)
	assert.Equal(t, "priority", prepared[1].ID)
	assert.Equal(t, map[string]interface{}{"id": "2"}, prepared[1].Value)

	require.Len(t, failures, 2)
	assert.Equal(t, "Sevrity", failures[0].Name)
	assert.Contains(t, failures[0].Suggestions, "Severity")
	assert.Equal(t, "Severity", failures[1].Name)
	assert.Contains(t, failures[1].Message, "Unheard Of")

	assert.Equal(t, 1, calls)
}

func TestPipelinePrepareSchemaFailureAborts(t *testing.T) {
	calls := 0
	cache := NewSchemaCache(countingProvider(&calls, testSchema()))
	pipeline := NewPipeline(cache, 0)

	_, _, err := pipeline.Prepare(context.Background(), "PROJ", "Epic", []Assignment{
		{Name: "Summary", Value: "x"},
	})

	var notFound *IssueTypeNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestPayloadKeysByFieldID(t *testing.T) {
	payload := Payload([]PreparedField{
		{Name: "Summary", ID: "summary", Value: "Fix"},
		{Name: "Severity", ID: "customfield_10001", Value: map[string]interface{}{"value": "Major"}},
	})

	assert.Equal(t, map[string]interface{}{
		"summary":           "Fix",
		"customfield_10001": map[string]interface{}{"value": "Major"},
	}, payload)
}

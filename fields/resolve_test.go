package fields

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t testing.TB) *Resolver {
	t.Helper()

	calls := 0
	return NewResolver(NewSchemaCache(countingProvider(&calls, testSchema())))
}

func TestResolveByDisplayNameCaseInsensitive(t *testing.T) {
	resolver := newTestResolver(t)

	field, err := resolver.Resolve(context.Background(), "PROJ", "Bug", "severity")
	require.NoError(t, err)

	assert.Equal(t, "severity", field.OriginalName)
	assert.Equal(t, "customfield_10001", field.ID)
	require.NotNil(t, field.Meta)
	assert.Equal(t, "Severity", field.Meta.Name)
}

func TestResolveTypoSuggestsCorrection(t *testing.T) {
	resolver := newTestResolver(t)

	_, err := resolver.Resolve(context.Background(), "PROJ", "Bug", "Sevrity")

	var resolveErr *ResolveError
	require.ErrorAs(t, err, &resolveErr)
	assert.Equal(t, "Sevrity", resolveErr.Name)
	require.NotEmpty(t, resolveErr.Suggestions)
	assert.Equal(t, "Severity", resolveErr.Suggestions[0])
	assert.Contains(t, resolveErr.Error(), "did you mean")
}

func TestResolveCustomFieldIDPassesThrough(t *testing.T) {
	resolver := newTestResolver(t)

	field, err := resolver.Resolve(context.Background(), "PROJ", "Bug", "customfield_10001")
	require.NoError(t, err)

	assert.Equal(t, "customfield_10001", field.ID)
	require.NotNil(t, field.Meta)
	assert.Equal(t, "Severity", field.Meta.Name)
}

func TestResolveUnknownInternalIDStillPassesThrough(t *testing.T) {
	resolver := newTestResolver(t)

	field, err := resolver.Resolve(context.Background(), "PROJ", "Bug", "customfield_99999")
	require.NoError(t, err)

	assert.Equal(t, "customfield_99999", field.ID)
	assert.Nil(t, field.Meta)
}

func TestResolveBuiltinIDAcceptedWithoutSchemaEntry(t *testing.T) {
	resolver := newTestResolver(t)

	field, err := resolver.Resolve(context.Background(), "PROJ", "Bug", "labels")
	require.NoError(t, err)

	assert.Equal(t, "labels", field.ID)
	assert.Nil(t, field.Meta)
}

func TestResolveAllPartitionsFailures(t *testing.T) {
	resolver := newTestResolver(t)

	resolved, failures, err := resolver.ResolveAll(
		context.Background(), "PROJ", "Bug",
		[]string{"Summary", "Sevrity", "Priority", "Bogus Field"},
	)
	require.NoError(t, err)

	assert.Len(t, resolved, 2)
	assert.Contains(t, resolved, "Summary")
	assert.Contains(t, resolved, "Priority")

	require.Len(t, failures, 2)
	assert.Equal(t, "Sevrity", failures[0].Name)
	assert.Equal(t, "Bogus Field", failures[1].Name)
}

func TestResolveAllAbortsOnSchemaFailure(t *testing.T) {
	resolver := newTestResolver(t)

	_, _, err := resolver.ResolveAll(context.Background(), "NOPE", "Bug", []string{"Summary"})

	var notFound *ProjectNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestSuggestionBound(t *testing.T) {
	assert.Equal(t, 3, suggestionBound("ab"))
	assert.Equal(t, 3, suggestionBound("abcdef"))
	assert.Equal(t, 5, suggestionBound("abcdefghij"))
}

func TestSuggestClosestEmptyBeyondBound(t *testing.T) {
	suggestions := suggestClosest("xyz", []string{"Severity", "Priority", "Summary"})

	assert.Empty(t, suggestions)
}

func TestSuggestClosestRanksAndCaps(t *testing.T) {
	suggestions := suggestClosest("priorty", []string{
		"Priority", "Parity", "Polarity", "Summary", "Porosity",
	})

	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Priority", suggestions[0])
	assert.LessOrEqual(t, len(suggestions), 3)
	assert.NotContains(t, suggestions, "Summary")
}

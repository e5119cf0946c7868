package fields

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestions = 3

// suggestionBound is the maximum edit distance a candidate may have from the
// query to be offered as a suggestion: max(3, ceil(len * 0.5)).
func suggestionBound(query string) int {
	bound := int(math.Ceil(float64(len(query)) * 0.5))
	if bound < 3 {
		bound = 3
	}
	return bound
}

// suggestClosest returns up to three candidates within the edit-distance
// bound of query, closest first. Matching is case-insensitive; candidate
// order is preserved for equal distances.
func suggestClosest(query string, candidates []string) []string {
	return rankCandidates(query, candidates, suggestionBound(query))
}

// suggestFromAllowed ranks an allowed-value list without the edit-distance
// cutoff. Enumerations are small, so even distant entries are worth showing.
func suggestFromAllowed(query string, candidates []string) []string {
	return rankCandidates(query, candidates, -1)
}

func rankCandidates(query string, candidates []string, bound int) []string {
	lowered := strings.ToLower(query)

	type scored struct {
		name     string
		distance int
	}

	var ranked []scored
	for _, candidate := range candidates {
		distance := levenshtein.ComputeDistance(lowered, strings.ToLower(candidate))
		if bound < 0 || distance <= bound {
			ranked = append(ranked, scored{name: candidate, distance: distance})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].distance < ranked[j].distance
	})

	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}

	suggestions := make([]string, 0, len(ranked))
	for _, entry := range ranked {
		suggestions = append(suggestions, entry.name)
	}
	return suggestions
}

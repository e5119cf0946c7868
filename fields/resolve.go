package fields

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// customFieldPattern is the internal-identifier shape of custom fields.
var customFieldPattern = regexp.MustCompile(`^customfield_\d+$`)

// builtinFieldIDs are internal identifiers accepted as-is without a display
// name lookup.
var builtinFieldIDs = map[string]struct{}{
	"assignee":    {},
	"components":  {},
	"description": {},
	"duedate":     {},
	"environment": {},
	"fixVersions": {},
	"issuetype":   {},
	"labels":      {},
	"parent":      {},
	"priority":    {},
	"project":     {},
	"reporter":    {},
	"resolution":  {},
	"security":    {},
	"summary":     {},
	"versions":    {},
}

// ResolveError reports a single field name that could not be resolved,
// with up to three near-match suggestions.
type ResolveError struct {
	Name        string
	Suggestions []string
}

func (e *ResolveError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown field %q", e.Name)
	}
	return fmt.Sprintf("unknown field %q (did you mean: %s?)", e.Name, strings.Join(e.Suggestions, ", "))
}

// Resolver maps user-supplied field names to schema entries.
type Resolver struct {
	cache *SchemaCache
}

// NewResolver creates a resolver backed by the given schema cache.
func NewResolver(cache *SchemaCache) *Resolver {
	return &Resolver{cache: cache}
}

// isInternalID reports whether name already matches the internal-identifier
// shape (customfield_<digits> or a built-in field id).
func isInternalID(name string) bool {
	if customFieldPattern.MatchString(name) {
		return true
	}
	_, ok := builtinFieldIDs[name]
	return ok
}

// Resolve maps fieldName to its schema entry. Internal identifiers are
// accepted as-is; their schema entry is attached opportunistically but
// resolution succeeds even if the lookup fails. Other names are matched
// case-insensitively against display names; misses return a *ResolveError
// carrying ranked suggestions. Schema-level failures (project or issue type
// not found) are returned unchanged.
func (r *Resolver) Resolve(ctx context.Context, projectKey, issueType, fieldName string) (ResolvedField, error) {
	if isInternalID(fieldName) {
		resolved := ResolvedField{
			OriginalName: fieldName,
			ID:           fieldName,
		}
		// Best effort: attach the schema entry when the lookup works.
		if fieldMap, err := r.cache.Fetch(ctx, projectKey, issueType); err == nil {
			if meta, ok := fieldMap[fieldName]; ok {
				resolved.Meta = &meta
			}
		}
		return resolved, nil
	}

	fieldMap, err := r.cache.Fetch(ctx, projectKey, issueType)
	if err != nil {
		return ResolvedField{}, err
	}

	return resolveAgainst(fieldMap, fieldName)
}

// resolveAgainst matches a display name against an already-fetched field map.
func resolveAgainst(fieldMap map[string]FieldMeta, fieldName string) (ResolvedField, error) {
	lowered := strings.ToLower(fieldName)

	// Iterate in id order so equal-distance suggestions are deterministic.
	ids := make([]string, 0, len(fieldMap))
	for id := range fieldMap {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		meta := fieldMap[id]
		if strings.ToLower(meta.Name) == lowered {
			meta.ID = id
			return ResolvedField{
				OriginalName: fieldName,
				ID:           id,
				Meta:         &meta,
			}, nil
		}
		names = append(names, meta.Name)
	}

	return ResolvedField{}, &ResolveError{
		Name:        fieldName,
		Suggestions: suggestClosest(fieldName, names),
	}
}

// ResolveAll resolves every name, partitioning the outcomes into a
// name-to-field map and per-name errors. It never short-circuits: all
// resolvable names resolve so every problem can be reported together.
// Schema-level failures abort the batch.
func (r *Resolver) ResolveAll(ctx context.Context, projectKey, issueType string, names []string) (map[string]ResolvedField, []*ResolveError, error) {
	resolved := make(map[string]ResolvedField, len(names))
	var failures []*ResolveError

	for _, name := range names {
		field, err := r.Resolve(ctx, projectKey, issueType, name)
		if err != nil {
			var resolveErr *ResolveError
			if errors.As(err, &resolveErr) {
				failures = append(failures, resolveErr)
				continue
			}
			return nil, nil, err
		}
		resolved[name] = field
	}

	return resolved, failures, nil
}

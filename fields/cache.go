package fields

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Provider fetches the field schema for a project from the external schema
// source (the transport client's create-meta endpoint). It returns the field
// map for every issue type of the project, keyed by issue type name and then
// by internal field id.
type Provider interface {
	FetchFields(ctx context.Context, projectKey string) (map[string]map[string]FieldMeta, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, projectKey string) (map[string]map[string]FieldMeta, error)

// FetchFields implements Provider.
func (f ProviderFunc) FetchFields(ctx context.Context, projectKey string) (map[string]map[string]FieldMeta, error) {
	return f(ctx, projectKey)
}

// ProjectNotFoundError reports that the schema source has no such project.
type ProjectNotFoundError struct {
	Key string
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project %q not found", e.Key)
}

// IssueTypeNotFoundError reports that the project has no such issue type and
// lists the valid names.
type IssueTypeNotFoundError struct {
	Project   string
	IssueType string
	Available []string
}

func (e *IssueTypeNotFoundError) Error() string {
	return fmt.Sprintf("issue type %q not found in project %q (available: %s)",
		e.IssueType, e.Project, strings.Join(e.Available, ", "))
}

// SchemaCache memoizes per-project field schemas for the process lifetime.
// Entries are immutable once cached; there is no eviction beyond Clear.
// Intended usage is one command invocation per process with sequential
// calls, so no locking is needed.
type SchemaCache struct {
	provider Provider
	entries  map[string]map[string]map[string]FieldMeta
}

// NewSchemaCache creates a cache backed by the given provider.
func NewSchemaCache(provider Provider) *SchemaCache {
	return &SchemaCache{
		provider: provider,
		entries:  map[string]map[string]map[string]FieldMeta{},
	}
}

// Fetch returns the field map for a (project, issue type) pair, invoking the
// provider at most once per project per cache lifetime.
func (c *SchemaCache) Fetch(ctx context.Context, projectKey, issueType string) (map[string]FieldMeta, error) {
	byIssueType, ok := c.entries[projectKey]
	if !ok {
		fetched, err := c.provider.FetchFields(ctx, projectKey)
		if err != nil {
			return nil, err
		}
		if len(fetched) == 0 {
			return nil, &ProjectNotFoundError{Key: projectKey}
		}
		c.entries[projectKey] = fetched
		byIssueType = fetched
	}

	fieldMap, ok := byIssueType[issueType]
	if !ok {
		available := make([]string, 0, len(byIssueType))
		for name := range byIssueType {
			available = append(available, name)
		}
		sort.Strings(available)
		return nil, &IssueTypeNotFoundError{
			Project:   projectKey,
			IssueType: issueType,
			Available: available,
		}
	}

	return fieldMap, nil
}

// Clear empties the cache unconditionally. Used by tests and long-running
// sessions that must pick up schema changes.
func (c *SchemaCache) Clear() {
	c.entries = map[string]map[string]map[string]FieldMeta{}
}

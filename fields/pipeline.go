package fields

import (
	"context"
)

// PreparedField is one resolved, formatted, validated field ready for a
// payload.
type PreparedField struct {
	// Name is the field name as the user supplied it.
	Name string
	// ID is the internal field identifier.
	ID string
	// Value is the type-correct payload value.
	Value interface{}
	// Description summarizes the transformation applied, for progress output.
	Description string
}

// FieldError is one per-field failure from any pipeline stage.
type FieldError struct {
	Name    string
	Message string
	// Suggestions are near-matches when the failure was a bad name or a
	// disallowed value.
	Suggestions []string
}

// Pipeline runs assignments through resolution, formatting, and validation.
type Pipeline struct {
	resolver *Resolver
	// maxDisplay caps allowed-value listings in error messages.
	maxDisplay int
}

// NewPipeline creates a pipeline over the given schema cache. maxDisplay
// caps allowed-value listings in validation errors, zero meaning no cap.
func NewPipeline(cache *SchemaCache, maxDisplay int) *Pipeline {
	return &Pipeline{
		resolver:   NewResolver(cache),
		maxDisplay: maxDisplay,
	}
}

// Prepare processes every assignment and never short-circuits on per-field
// problems: all failures come back together so the user can fix them in one
// pass. Only schema-level failures (project or issue type not found) abort
// with an error.
func (p *Pipeline) Prepare(ctx context.Context, projectKey, issueType string, assignments []Assignment) ([]PreparedField, []FieldError, error) {
	names := make([]string, 0, len(assignments))
	for _, assignment := range assignments {
		names = append(names, assignment.Name)
	}

	resolved, resolveFailures, err := p.resolver.ResolveAll(ctx, projectKey, issueType, names)
	if err != nil {
		return nil, nil, err
	}

	var failures []FieldError
	for _, failure := range resolveFailures {
		failures = append(failures, FieldError{
			Name:        failure.Name,
			Message:     failure.Error(),
			Suggestions: failure.Suggestions,
		})
	}

	var prepared []PreparedField
	for _, assignment := range assignments {
		field, ok := resolved[assignment.Name]
		if !ok {
			continue
		}

		result, err := Format(field, assignment.Value)
		if err != nil {
			failures = append(failures, FieldError{
				Name:    assignment.Name,
				Message: err.Error(),
			})
			continue
		}

		if validation := Validate(field, result.Value, p.maxDisplay); !validation.Valid {
			failures = append(failures, FieldError{
				Name:        assignment.Name,
				Message:     validation.Error,
				Suggestions: validation.Suggestions,
			})
			continue
		}

		prepared = append(prepared, PreparedField{
			Name:        assignment.Name,
			ID:          field.ID,
			Value:       result.Value,
			Description: result.Description,
		})
	}

	return prepared, failures, nil
}

// Payload collapses prepared fields into the id-keyed map used in issue
// create and update request bodies.
func Payload(prepared []PreparedField) map[string]interface{} {
	payload := make(map[string]interface{}, len(prepared))
	for _, field := range prepared {
		payload[field.ID] = field.Value
	}
	return payload
}

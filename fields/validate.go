package fields

import (
	"fmt"
	"strings"
)

// ValidationResult reports whether a formatted value is among a field's
// allowed values. Valid is always true for fields without an enumeration.
type ValidationResult struct {
	Valid bool
	// Error describes the mismatch when Valid is false.
	Error string
	// AllowedValues lists the legal display tokens, for user-facing output.
	AllowedValues []string
	// Suggestions are near-matches for the rejected token, closest first.
	Suggestions []string
}

// Validate checks a formatted value against the field's allowed values.
// Fields with no enumeration always pass. Array values are checked
// element-wise; the first mismatch is reported. maxDisplay caps the allowed
// value listing in the result, zero meaning no cap.
func Validate(field ResolvedField, formatted interface{}, maxDisplay int) ValidationResult {
	if field.Meta == nil || len(field.Meta.AllowedValues) == 0 {
		return ValidationResult{Valid: true}
	}

	if elements, ok := formatted.([]interface{}); ok {
		for _, element := range elements {
			result := validateSingle(field, element, maxDisplay)
			if !result.Valid {
				return result
			}
		}
		return ValidationResult{Valid: true}
	}

	return validateSingle(field, formatted, maxDisplay)
}

func validateSingle(field ResolvedField, formatted interface{}, maxDisplay int) ValidationResult {
	token := extractToken(formatted)
	if token == "" {
		return ValidationResult{Valid: true}
	}
	lowered := strings.ToLower(token)

	displays := make([]string, 0, len(field.Meta.AllowedValues))
	for _, allowed := range field.Meta.AllowedValues {
		if strings.ToLower(allowed.Name) == lowered && allowed.Name != "" {
			return ValidationResult{Valid: true}
		}
		if strings.ToLower(allowed.Value) == lowered && allowed.Value != "" {
			return ValidationResult{Valid: true}
		}
		if allowed.ID == token && allowed.ID != "" {
			return ValidationResult{Valid: true}
		}
		displays = append(displays, allowed.Display())
	}

	return ValidationResult{
		Valid: false,
		Error: fmt.Sprintf("%q is not an allowed value for field %q (allowed: %s)",
			token, field.OriginalName, DisplayAllowedValues(field.Meta.AllowedValues, maxDisplay)),
		AllowedValues: displays,
		Suggestions:   suggestFromAllowed(token, displays),
	}
}

// extractToken pulls the comparable token out of a formatted value: wrapper
// maps yield their value, name, or id entry in that order; plain strings are
// used directly. Non-string scalars are not validated.
func extractToken(formatted interface{}) string {
	switch typed := formatted.(type) {
	case string:
		return typed
	case map[string]interface{}:
		for _, key := range []string{"value", "name", "id"} {
			if entry, ok := typed[key]; ok {
				if text, ok := entry.(string); ok {
					return text
				}
			}
		}
	}
	return ""
}

// DisplayAllowedValues renders an allowed value listing capped at max
// entries, with a "+N more" suffix for the remainder. A max of zero means no
// cap.
func DisplayAllowedValues(values []AllowedValue, max int) string {
	displays := make([]string, 0, len(values))
	for _, value := range values {
		displays = append(displays, value.Display())
	}

	if max > 0 && len(displays) > max {
		remainder := len(displays) - max
		displays = displays[:max]
		return fmt.Sprintf("%s, +%d more", strings.Join(displays, ", "), remainder)
	}
	return strings.Join(displays, ", ")
}

// Package fields maps human-readable field names and free-text values onto
// the ticketing platform's internal field identifiers, type-correct payload
// shapes, and enumerated allowed values.
package fields

// AllowedValue is one legal choice for an enumerated field. Depending on the
// field type the platform populates a name, a distinct value token, or both.
type AllowedValue struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// Display returns the human-facing token for an allowed value.
func (v AllowedValue) Display() string {
	switch {
	case v.Name != "":
		return v.Name
	case v.Value != "":
		return v.Value
	default:
		return v.ID
	}
}

// FieldSchema describes a field's declared type.
type FieldSchema struct {
	Type string `json:"type"`
	// Items is the element type for array-typed fields.
	Items string `json:"items,omitempty"`
	// System is set for built-in fields, Custom for custom field types
	// (a legacy plugin-style identifier, matched by substring as a
	// fallback dispatch tier).
	System string `json:"system,omitempty"`
	Custom string `json:"custom,omitempty"`
}

// FieldMeta is the schema entry for one field available on a
// (project, issue type) pair.
type FieldMeta struct {
	ID            string         `json:"fieldId,omitempty"`
	Name          string         `json:"name"`
	Required      bool           `json:"required"`
	HasDefault    bool           `json:"hasDefaultValue,omitempty"`
	Schema        FieldSchema    `json:"schema"`
	AllowedValues []AllowedValue `json:"allowedValues,omitempty"`
}

// ResolvedField binds a user-supplied field name to its schema entry.
// Constructed fresh per command invocation and discarded after use.
type ResolvedField struct {
	// OriginalName is the name exactly as the user supplied it.
	OriginalName string
	// ID is the internal field identifier.
	ID string
	// Meta is nil when the id bypassed schema lookup (internal-identifier
	// shape with no schema entry); downstream formatting then treats the
	// field as an untyped pass-through.
	Meta *FieldMeta
}

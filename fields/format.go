package fields

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatResult holds a type-correct payload value plus a short description of
// the transformation applied, used for progress reporting.
type FormatResult struct {
	Value       interface{}
	Description string
}

// FormatError reports a value that could not be coerced to its field's
// declared type.
type FormatError struct {
	Field   string
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Message)
}

// Dispatch kinds. Exhaustive schema-type matching runs first; legacy custom
// type identifiers are matched by substring as a fallback tier.
type valueKind int

const (
	kindPassthrough valueKind = iota
	kindArray
	kindOption
	kindUser
	kindPriority
	kindName
	kindNumber
	kindDate
	kindDatetime
)

func dispatchKind(meta *FieldMeta) valueKind {
	if meta == nil {
		return kindPassthrough
	}

	switch meta.Schema.Type {
	case "array":
		return kindArray
	case "option":
		return kindOption
	case "user":
		return kindUser
	case "priority":
		return kindPriority
	case "version", "component", "resolution":
		return kindName
	case "number":
		return kindNumber
	case "date":
		return kindDate
	case "datetime":
		return kindDatetime
	default:
		return customKind(meta.Schema.Custom)
	}
}

// customKind maps legacy custom-type identifiers by substring. Kept isolated
// so the fuzzy rules don't leak into the primary dispatch.
func customKind(custom string) valueKind {
	switch {
	case custom == "":
		return kindPassthrough
	case strings.Contains(custom, "multiselect"), strings.Contains(custom, "multicheckboxes"):
		return kindArray
	case strings.Contains(custom, "select"), strings.Contains(custom, "radiobuttons"):
		return kindOption
	case strings.Contains(custom, "userpicker"):
		return kindUser
	case strings.Contains(custom, "datetime"):
		return kindDatetime
	case strings.Contains(custom, "datepicker"):
		return kindDate
	case strings.Contains(custom, "float"):
		return kindNumber
	default:
		return kindPassthrough
	}
}

// Format coerces a raw value to the wire shape required by the field's
// declared type.
func Format(field ResolvedField, raw interface{}) (FormatResult, error) {
	// Already-object-shaped values matching a recognized wrapper shape pass
	// through unchanged regardless of type.
	if wrapped, ok := raw.(map[string]interface{}); ok && isWrapperShape(wrapped) {
		return FormatResult{Value: raw, Description: "passed through pre-shaped value"}, nil
	}

	switch dispatchKind(field.Meta) {
	case kindArray:
		return formatArray(field, raw)
	case kindOption:
		return formatOption(field, raw)
	case kindUser:
		return FormatResult{
			Value:       map[string]interface{}{"accountId": stringify(raw)},
			Description: "wrapped as user reference",
		}, nil
	case kindPriority:
		return formatPriority(field, raw)
	case kindName:
		return FormatResult{
			Value:       map[string]interface{}{"name": stringify(raw)},
			Description: "wrapped as named entity",
		}, nil
	case kindNumber:
		return formatNumber(field, raw)
	case kindDate:
		return formatDate(field, raw)
	case kindDatetime:
		return formatDatetime(field, raw)
	default:
		return FormatResult{Value: raw, Description: "passed through unchanged"}, nil
	}
}

func isWrapperShape(value map[string]interface{}) bool {
	for _, key := range []string{"value", "name", "id", "accountId"} {
		if _, ok := value[key]; ok {
			return true
		}
	}
	return false
}

func stringify(raw interface{}) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", raw)
}

// formatOption matches the raw string against the field's allowed values
// (case-insensitive name or value-token match) and wraps the matched token.
func formatOption(field ResolvedField, raw interface{}) (FormatResult, error) {
	text := stringify(raw)
	lowered := strings.ToLower(text)

	if field.Meta != nil {
		for _, allowed := range field.Meta.AllowedValues {
			if strings.ToLower(allowed.Value) == lowered && allowed.Value != "" {
				return FormatResult{
					Value:       map[string]interface{}{"value": allowed.Value},
					Description: fmt.Sprintf("matched option %q", allowed.Value),
				}, nil
			}
			if strings.ToLower(allowed.Name) == lowered && allowed.Name != "" {
				token := allowed.Value
				if token == "" {
					token = allowed.Name
				}
				return FormatResult{
					Value:       map[string]interface{}{"value": token},
					Description: fmt.Sprintf("matched option %q", token),
				}, nil
			}
		}
	}

	// Unmatched options still format; validation reports the mismatch.
	return FormatResult{
		Value:       map[string]interface{}{"value": text},
		Description: "wrapped as option value",
	}, nil
}

// formatPriority prefers an id reference when the name matches an allowed
// value, falling back to a name reference.
func formatPriority(field ResolvedField, raw interface{}) (FormatResult, error) {
	text := stringify(raw)
	lowered := strings.ToLower(text)

	if field.Meta != nil {
		for _, allowed := range field.Meta.AllowedValues {
			if strings.ToLower(allowed.Name) == lowered && allowed.ID != "" {
				return FormatResult{
					Value:       map[string]interface{}{"id": allowed.ID},
					Description: fmt.Sprintf("matched priority %q by id", allowed.Name),
				}, nil
			}
		}
	}

	return FormatResult{
		Value:       map[string]interface{}{"name": text},
		Description: "wrapped as priority name",
	}, nil
}

func formatNumber(field ResolvedField, raw interface{}) (FormatResult, error) {
	switch number := raw.(type) {
	case float64:
		return FormatResult{Value: number, Description: "passed through number"}, nil
	case int:
		return FormatResult{Value: number, Description: "passed through number"}, nil
	}

	text := strings.TrimSpace(stringify(raw))
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return FormatResult{}, &FormatError{
			Field:   field.OriginalName,
			Message: fmt.Sprintf("%q is not a valid number", text),
		}
	}

	return FormatResult{
		Value:       parsed,
		Description: fmt.Sprintf("parsed number %v", parsed),
	}, nil
}

// formatArray splits comma-separated strings (or accepts existing arrays) and
// formats each element according to the declared item type.
func formatArray(field ResolvedField, raw interface{}) (FormatResult, error) {
	var elements []interface{}
	switch typed := raw.(type) {
	case []interface{}:
		elements = typed
	case []string:
		for _, element := range typed {
			elements = append(elements, element)
		}
	case string:
		for _, part := range strings.Split(typed, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				elements = append(elements, trimmed)
			}
		}
	default:
		elements = []interface{}{raw}
	}

	items := ""
	if field.Meta != nil {
		items = field.Meta.Schema.Items
	}

	formatted := make([]interface{}, 0, len(elements))
	switch items {
	case "string":
		for _, element := range elements {
			formatted = append(formatted, stringify(element))
		}
		return FormatResult{
			Value:       formatted,
			Description: fmt.Sprintf("split into %d string values", len(formatted)),
		}, nil

	case "option":
		for _, element := range elements {
			result, err := formatOption(field, element)
			if err != nil {
				return FormatResult{}, err
			}
			formatted = append(formatted, result.Value)
		}
		return FormatResult{
			Value:       formatted,
			Description: fmt.Sprintf("split into %d option values", len(formatted)),
		}, nil

	case "user":
		for _, element := range elements {
			formatted = append(formatted, map[string]interface{}{"accountId": stringify(element)})
		}
		return FormatResult{
			Value:       formatted,
			Description: fmt.Sprintf("split into %d user references", len(formatted)),
		}, nil

	default:
		key := detectArrayShape(field.Meta)
		if key == "" {
			for _, element := range elements {
				formatted = append(formatted, element)
			}
			return FormatResult{
				Value:       formatted,
				Description: fmt.Sprintf("split into %d values", len(formatted)),
			}, nil
		}
		for _, element := range elements {
			formatted = append(formatted, map[string]interface{}{key: stringify(element)})
		}
		return FormatResult{
			Value:       formatted,
			Description: fmt.Sprintf("split into %d %s-wrapped values", len(formatted), key),
		}, nil
	}
}

// detectArrayShape inspects the field's allowed values to decide how array
// members should be wrapped: name if any allowed value has a name without a
// value token, else value if any has a value token, else id if every sampled
// allowed value has only an id. Empty string means no wrapping.
func detectArrayShape(meta *FieldMeta) string {
	if meta == nil || len(meta.AllowedValues) == 0 {
		return ""
	}

	hasBareName := false
	hasValueToken := false
	allIDOnly := true
	for _, allowed := range meta.AllowedValues {
		if allowed.Name != "" && allowed.Value == "" {
			hasBareName = true
		}
		if allowed.Value != "" {
			hasValueToken = true
		}
		if allowed.Name != "" || allowed.Value != "" || allowed.ID == "" {
			allIDOnly = false
		}
	}

	switch {
	case hasBareName:
		return "name"
	case hasValueToken:
		return "value"
	case allIDOnly:
		return "id"
	default:
		return ""
	}
}

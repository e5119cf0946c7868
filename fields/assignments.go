package fields

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Assignment is one user-supplied name=value pair, value still raw.
type Assignment struct {
	Name  string
	Value interface{}
}

// ParseAssignments splits name=value arguments on the first equals sign.
// Values that parse as JSON are decoded so callers can pass arrays and
// objects directly; everything else stays a string.
func ParseAssignments(args []string) ([]Assignment, error) {
	assignments := make([]Assignment, 0, len(args))
	for _, arg := range args {
		name, value, found := strings.Cut(arg, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid field assignment %q, expected name=value", arg)
		}

		assignments = append(assignments, Assignment{
			Name:  name,
			Value: decodeValue(value),
		})
	}
	return assignments, nil
}

// decodeValue opportunistically decodes JSON arrays and objects. Bare
// scalars stay strings even when they look like JSON numbers or booleans,
// since the formatter owns type coercion.
func decodeValue(value string) interface{} {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "{") {
		return value
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
		return value
	}
	return decoded
}

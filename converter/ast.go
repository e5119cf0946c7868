package converter

// Doc represents the root document node of a rich-text document.
type Doc struct {
	Version int    `json:"version"`
	Type    string `json:"type"`
	Content []Node `json:"content,omitempty"`
}

// Node represents any node in the document tree (e.g., paragraph, text, etc.).
// Only text nodes carry Text and Marks; container nodes carry Content.
type Node struct {
	Type    string                 `json:"type"`
	Text    string                 `json:"text,omitempty"`
	Content []Node                 `json:"content,omitempty"`
	Marks   []Mark                 `json:"marks,omitempty"`
	Attrs   map[string]interface{} `json:"attrs,omitempty"`
}

// Mark represents inline formatting applied to a text node (e.g., strong, em).
type Mark struct {
	Type  string                 `json:"type"`
	Attrs map[string]interface{} `json:"attrs,omitempty"`
}

// GetStringAttr returns the named attribute as a string, or fallback when the
// attribute is missing or not a string.
func (n Node) GetStringAttr(name, fallback string) string {
	if n.Attrs == nil {
		return fallback
	}
	if value, ok := n.Attrs[name].(string); ok {
		return value
	}
	return fallback
}

// GetIntAttr returns the named attribute as an int. JSON numbers decode as
// float64, so both shapes are accepted.
func (n Node) GetIntAttr(name string, fallback int) int {
	if n.Attrs == nil {
		return fallback
	}
	switch value := n.Attrs[name].(type) {
	case float64:
		return int(value)
	case int:
		return value
	default:
		return fallback
	}
}

// GetBoolAttr returns the named attribute as a bool, or fallback.
func (n Node) GetBoolAttr(name string, fallback bool) bool {
	if n.Attrs == nil {
		return fallback
	}
	if value, ok := n.Attrs[name].(bool); ok {
		return value
	}
	return fallback
}

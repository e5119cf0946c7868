package converter

import (
	"fmt"
	"strconv"
	"time"
)

// convertEmoji converts an emoji node to a shortcode or fallback
func (s *state) convertEmoji(node Node) string {
	shortName := node.GetStringAttr("shortName", "")
	fallback := node.GetStringAttr("fallback", "")

	if shortName != "" {
		return shortName
	}
	return fallback
}

// convertMention converts a mention node to its text representation
func (s *state) convertMention(node Node) string {
	return node.GetStringAttr("text", "Unknown User")
}

// convertStatus converts a status node to a bracketed text badge
func (s *state) convertStatus(node Node) string {
	text := node.GetStringAttr("text", "Unknown")
	return fmt.Sprintf("[Status: %s]", text)
}

// convertDate converts a date node to ISO 8601 format
func (s *state) convertDate(node Node) string {
	timestamp := node.GetStringAttr("timestamp", "")
	if timestamp == "" {
		s.addWarning(WarnMissingAttr, "date node missing timestamp")
		return "[Date: invalid]"
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		s.addWarning(WarnMissingAttr, "date node has invalid timestamp "+timestamp)
		return "[Date: invalid]"
	}

	// Timestamps may be in seconds or milliseconds; values past year 2286 in
	// seconds are treated as milliseconds.
	if ts > 10000000000 {
		ts = ts / 1000
	}

	return time.Unix(ts, 0).UTC().Format("2006-01-02")
}

// convertInlineCard converts a link/embed card to a plain markdown link
func (s *state) convertInlineCard(node Node) string {
	url := node.GetStringAttr("url", "")
	if url != "" {
		return fmt.Sprintf("[%s](%s)", url, url)
	}

	if node.Attrs != nil {
		if data, ok := node.Attrs["data"].(map[string]interface{}); ok {
			name, _ := data["name"].(string)
			dataURL, _ := data["url"].(string)

			switch {
			case name != "" && dataURL != "":
				return fmt.Sprintf("[%s](%s)", name, dataURL)
			case dataURL != "":
				return fmt.Sprintf("[%s](%s)", dataURL, dataURL)
			case name != "":
				return name
			}
		}
	}

	s.addWarning(WarnMissingAttr, "inline card missing url and data")
	return "[Smart Link]"
}

package converter

import "strings"

// convertInlineContent processes inline content nodes while maintaining mark
// continuity across adjacent text nodes.
func (s *state) convertInlineContent(content []Node) string {
	var sb strings.Builder
	var activeMarks []Mark

	// If any text node carries both strong and em, use underscores for em so
	// the nested delimiters stay unambiguous.
	useUnderscoreForEm := hasStrongAndEm(content)

	for _, node := range content {
		if node.Type != "text" {
			// For non-text nodes, close all active marks, process node, reset marks
			for i := len(activeMarks) - 1; i >= 0; i-- {
				sb.WriteString(s.closingDelimiter(activeMarks[i], useUnderscoreForEm))
			}
			sb.WriteString(s.convertNode(node))
			activeMarks = nil
			continue
		}

		currentMarks := node.Marks

		marksToClose := marksToClose(activeMarks, currentMarks)
		marksToOpen := marksToOpen(activeMarks, currentMarks)

		// Close marks (in reverse order)
		for i := len(marksToClose) - 1; i >= 0; i-- {
			sb.WriteString(s.closingDelimiter(marksToClose[i], useUnderscoreForEm))
		}

		// Open new marks (in order)
		for _, mark := range marksToOpen {
			sb.WriteString(s.openingDelimiter(mark, useUnderscoreForEm))
		}

		sb.WriteString(node.Text)

		activeMarks = currentMarks
	}

	// Close any remaining marks at end of content
	for i := len(activeMarks) - 1; i >= 0; i-- {
		sb.WriteString(s.closingDelimiter(activeMarks[i], useUnderscoreForEm))
	}

	return sb.String()
}

// hasStrongAndEm checks if any text node in content has both strong and em marks
func hasStrongAndEm(content []Node) bool {
	for _, node := range content {
		if node.Type != "text" {
			continue
		}
		hasStrong := false
		hasEm := false
		for _, mark := range node.Marks {
			if mark.Type == "strong" {
				hasStrong = true
			}
			if mark.Type == "em" {
				hasEm = true
			}
		}
		if hasStrong && hasEm {
			return true
		}
	}
	return false
}

// marksToClose returns active marks that are no longer present, from the
// first point of divergence.
func marksToClose(activeMarks, currentMarks []Mark) []Mark {
	closeFromIndex := -1
	for i, activeMark := range activeMarks {
		if i >= len(currentMarks) || !marksEqual(activeMark, currentMarks[i]) {
			closeFromIndex = i
			break
		}
	}

	if closeFromIndex >= 0 {
		return activeMarks[closeFromIndex:]
	}

	return nil
}

// marksToOpen returns marks after the common prefix with the active set.
func marksToOpen(activeMarks, currentMarks []Mark) []Mark {
	commonLen := 0
	for i := 0; i < len(activeMarks) && i < len(currentMarks); i++ {
		if marksEqual(activeMarks[i], currentMarks[i]) {
			commonLen++
		} else {
			break
		}
	}

	if commonLen < len(currentMarks) {
		return currentMarks[commonLen:]
	}
	return nil
}

// marksEqual compares two marks for equality.
// For marks with attributes (link), it also compares the attributes.
func marksEqual(m1, m2 Mark) bool {
	if m1.Type != m2.Type {
		return false
	}

	switch m1.Type {
	case "link":
		return markAttrsEqual(m1.Attrs, m2.Attrs, []string{"href", "title"})
	case "textColor":
		return markAttrsEqual(m1.Attrs, m2.Attrs, []string{"color"})
	case "subsup":
		return markAttrsEqual(m1.Attrs, m2.Attrs, []string{"type"})
	}

	return true
}

// markAttrsEqual compares specific attributes between two marks
func markAttrsEqual(attrs1, attrs2 map[string]interface{}, keys []string) bool {
	for _, key := range keys {
		val1, has1 := attrs1[key]
		val2, has2 := attrs2[key]
		if has1 != has2 {
			return false
		}
		if has1 && val1 != val2 {
			return false
		}
	}
	return true
}

func (s *state) openingDelimiter(mark Mark, useUnderscoreForEm bool) string {
	prefix, _ := s.markDelimiters(mark, useUnderscoreForEm, true)
	return prefix
}

func (s *state) closingDelimiter(mark Mark, useUnderscoreForEm bool) string {
	_, suffix := s.markDelimiters(mark, useUnderscoreForEm, false)
	return suffix
}

// markDelimiters returns the opening and closing delimiters for a mark.
// Lossy approximations record a warning once, on the opening side.
func (s *state) markDelimiters(mark Mark, useUnderscoreForEm, opening bool) (string, string) {
	switch mark.Type {
	case "strong":
		return "**", "**"
	case "em":
		if useUnderscoreForEm {
			return "_", "_"
		}
		return "*", "*"
	case "strike":
		return "~~", "~~"
	case "code":
		return "`", "`"
	case "underline":
		// No markdown equivalent; approximate with italics.
		if opening {
			s.addWarning(WarnUnderline, "underline has no markdown equivalent; rendered as italics")
		}
		if useUnderscoreForEm {
			return "_", "_"
		}
		return "*", "*"
	case "textColor":
		if opening {
			color := ""
			if mark.Attrs != nil {
				color, _ = mark.Attrs["color"].(string)
			}
			s.addWarning(WarnTextColor, "text color "+color+" dropped; markdown has no color syntax")
		}
		return "", ""
	case "subsup":
		if opening {
			s.addWarning(WarnSubSup, "subscript/superscript rendered as plain text")
		}
		return "", ""
	case "link":
		if mark.Attrs == nil {
			return "", ""
		}
		href, hasHref := mark.Attrs["href"].(string)
		if !hasHref || href == "" {
			// No href - just return plain text
			return "", ""
		}

		// Build link syntax: [text](href) or [text](href "title")
		closing := "](" + href
		if title, hasTitle := mark.Attrs["title"].(string); hasTitle && title != "" {
			escapedTitle := strings.ReplaceAll(title, "\\", "\\\\")
			escapedTitle = strings.ReplaceAll(escapedTitle, "\"", "\\\"")
			closing += " \"" + escapedTitle + "\""
		}
		closing += ")"

		return "[", closing
	default:
		// Unknown marks preserve text, lose formatting.
		if opening {
			s.addWarning(WarnUnknownMark, "unknown mark type "+mark.Type+" dropped")
		}
		return "", ""
	}
}

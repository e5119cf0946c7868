package converter

import (
	"fmt"
	"strings"
)

// convertBulletList converts a bullet list node to markdown
func (s *state) convertBulletList(node Node) string {
	marker := string(s.config.BulletMarker) + " "

	var sb strings.Builder
	for _, item := range node.Content {
		if item.Type != "listItem" {
			continue
		}

		sb.WriteString(s.indent(s.convertListItemContent(item.Content), marker))
		sb.WriteString("\n")
	}

	return sb.String() + "\n"
}

// convertOrderedList converts an ordered list node to markdown
func (s *state) convertOrderedList(node Node) string {
	// Extract starting order from attributes (default to 1)
	currentNum := node.GetIntAttr("order", 1)

	var sb strings.Builder
	for _, item := range node.Content {
		if item.Type != "listItem" {
			continue
		}

		marker := fmt.Sprintf("%d. ", currentNum)
		sb.WriteString(s.indent(s.convertListItemContent(item.Content), marker))
		sb.WriteString("\n")
		currentNum++
	}

	return sb.String() + "\n"
}

// convertListItemContent converts a list item's children, keeping nested
// blocks indented under the item marker.
func (s *state) convertListItemContent(content []Node) string {
	converted := s.convertChildren(content)
	return strings.TrimRight(converted, "\n")
}

// convertTaskList converts a task list node to markdown checkboxes
func (s *state) convertTaskList(node Node) string {
	var sb strings.Builder

	for _, item := range node.Content {
		switch item.Type {
		case "taskItem":
			sb.WriteString(s.convertTaskItem(item))
		case "taskList":
			// Nested task list: indent under the previous item.
			nested := strings.TrimRight(s.convertTaskList(item), "\n")
			if nested != "" {
				sb.WriteString(s.indent(nested, "  "))
				sb.WriteString("\n")
			}
		default:
			s.addWarning(WarnTaskList, "task list child "+item.Type+" flattened to plain content")
			sb.WriteString(s.convertNode(item))
		}
	}

	return sb.String() + "\n"
}

// convertTaskItem converts a task item node to a checkbox line
func (s *state) convertTaskItem(node Node) string {
	marker := "- [ ] "
	if node.GetStringAttr("state", "TODO") == "DONE" {
		marker = "- [x] "
	}

	// Task items carry inline content only; marks are preserved.
	content := s.convertInlineContent(node.Content)

	return s.indent(content, marker) + "\n"
}

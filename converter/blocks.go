package converter

import "strings"

// convertParagraph converts a paragraph node to markdown
func (s *state) convertParagraph(node Node) string {
	// Process paragraph content with mark continuity.
	content := s.convertInlineContent(node.Content)
	if content == "" {
		return ""
	}

	// Standard paragraph has two newlines to separate from next block
	return content + "\n\n"
}

// convertText converts a text node (standalone, not within paragraph)
func (s *state) convertText(node Node) string {
	// Text nodes should be processed within paragraph context
	// This case handles standalone text (shouldn't normally occur)
	return node.Text
}

// convertHeading converts a heading node to markdown
func (s *state) convertHeading(node Node) string {
	// Extract level from attributes (default to 1 if missing/invalid).
	level := node.GetIntAttr("level", 1)
	level += s.config.HeadingOffset

	// Clamp level to valid range (1-6)
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}

	// Process content with mark continuity
	content := s.convertInlineContent(node.Content)
	if content == "" {
		return ""
	}
	// Edge case: headings don't support a trailing hard break
	content = strings.TrimSuffix(content, "\\")

	return strings.Repeat("#", level) + " " + content + "\n\n"
}

// convertBlockquote converts a blockquote node to markdown
func (s *state) convertBlockquote(node Node) string {
	// Handle empty blockquote
	if len(node.Content) == 0 {
		return ""
	}

	content := s.blockquoteContent(s.convertChildren(node.Content))
	if content == "" {
		return ""
	}

	return content + "\n\n"
}

// convertRule converts a horizontal rule node to markdown
func (s *state) convertRule() string {
	return "---\n\n"
}

// convertHardBreak converts a hard line break to markdown (backslash + newline)
func (s *state) convertHardBreak() string {
	return "\\\n"
}

// convertCodeBlock converts a code block node to a fenced block
func (s *state) convertCodeBlock(node Node) string {
	if len(node.Content) == 0 {
		return ""
	}

	content := s.extractTextFromContent(node.Content)
	if strings.TrimSpace(content) == "" {
		return ""
	}

	language := node.GetStringAttr("language", "")
	if mapped, ok := s.config.LanguageMap[language]; ok {
		language = mapped
	}

	var sb strings.Builder
	sb.WriteString("```")
	sb.WriteString(language)
	sb.WriteString("\n")
	sb.WriteString(strings.TrimRight(content, "\n"))
	sb.WriteString("\n```\n\n")

	return sb.String()
}

// blockquoteContent prefixes every line of content with ">"
func (s *state) blockquoteContent(content string) string {
	content = strings.TrimRight(content, "\n")
	if content == "" {
		return ""
	}

	lines := strings.Split(content, "\n")

	quotedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		switch {
		case line == "":
			quotedLines = append(quotedLines, "> ")
		case strings.HasPrefix(line, ">"):
			// Already a blockquote (nested)
			quotedLines = append(quotedLines, ">"+line)
		default:
			quotedLines = append(quotedLines, "> "+line)
		}
	}

	return strings.Join(quotedLines, "\n")
}

// extractTextFromContent extracts raw text from a list of nodes (shallow, mainly for code blocks)
func (s *state) extractTextFromContent(content []Node) string {
	var sb strings.Builder
	for _, child := range content {
		if child.Type == "text" {
			sb.WriteString(child.Text)
		}
	}
	return sb.String()
}

// indent applies uniform indentation to content within a list item.
// The first line is prefixed with the marker, subsequent lines with spaces matching marker length.
func (s *state) indent(content, marker string) string {
	content = strings.TrimRight(content, "\n")
	if content == "" {
		return ""
	}

	lines := strings.Split(content, "\n")
	indentStr := strings.Repeat(" ", len(marker))

	result := make([]string, 0, len(lines))
	for i, line := range lines {
		switch {
		case i == 0:
			result = append(result, marker+line)
		case line != "":
			result = append(result, indentStr+line)
		default:
			result = append(result, "")
		}
	}

	return strings.Join(result, "\n")
}

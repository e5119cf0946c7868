package converter

import "strings"

// convertTable converts a table node to a pipe table. The first converted row
// is always treated as the header row. A table with a single row gets a
// synthetic blank header so the real row renders as data; some source
// documents use single-row tables as ad hoc key-value displays.
func (s *state) convertTable(node Node) string {
	if len(node.Content) == 0 {
		return ""
	}

	var rows [][]string
	for _, rowNode := range node.Content {
		if rowNode.Type != "tableRow" {
			continue
		}

		var row []string
		for _, cellNode := range rowNode.Content {
			row = append(row, s.convertCellContent(cellNode))
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return ""
	}

	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	var headerRow []string
	var dataRows [][]string

	if len(rows) == 1 {
		headerRow = make([]string, colCount)
		dataRows = rows
	} else {
		headerRow = rows[0]
		dataRows = rows[1:]
	}

	var sb strings.Builder

	writeRow := func(row []string) {
		sb.WriteString("|")
		for i := 0; i < colCount; i++ {
			sb.WriteString(" ")
			if i < len(row) {
				sb.WriteString(row[i])
			}
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	writeRow(headerRow)

	sb.WriteString("|")
	for i := 0; i < colCount; i++ {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	for _, row := range dataRows {
		writeRow(row)
	}

	sb.WriteString("\n")
	return sb.String()
}

// convertCellContent flattens the content of a table cell to a single line
func (s *state) convertCellContent(node Node) string {
	if len(node.Content) == 0 {
		return ""
	}

	var parts []string
	for _, child := range node.Content {
		switch child.Type {
		case "paragraph":
			// Inline content without the trailing newlines
			if content := s.convertInlineContent(child.Content); content != "" {
				parts = append(parts, content)
			}

		case "codeBlock":
			// Pipe tables can't hold fenced blocks; flatten to a code span.
			rawCode := s.extractTextFromContent(child.Content)
			if strings.TrimSpace(rawCode) == "" {
				continue
			}
			flatCode := strings.ReplaceAll(rawCode, "\n", " ")
			parts = append(parts, "`"+flatCode+"`")

		default:
			content := strings.TrimRight(s.convertNode(child), "\n")
			if content != "" {
				parts = append(parts, strings.ReplaceAll(content, "\n", " "))
			}
		}
	}

	result := strings.Join(parts, " ")
	// Escape pipe characters as they break pipe tables. Child converters must
	// not pre-escape pipes; only this final output escapes them.
	return strings.ReplaceAll(result, "|", "\\|")
}

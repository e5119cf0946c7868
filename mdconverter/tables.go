package mdconverter

import (
	"github.com/rgonek/jira-agent-kit/converter"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func (s *state) convertTableNode(node *extast.Table) (converter.Node, bool) {
	table := converter.Node{
		Type: "table",
	}

	for row := node.FirstChild(); row != nil; row = row.NextSibling() {
		if converted, ok := s.convertTableRowNode(row); ok {
			table.Content = append(table.Content, converted)
		}
	}

	if len(table.Content) == 0 {
		return converter.Node{}, false
	}

	return table, true
}

func (s *state) convertTableRowNode(node ast.Node) (converter.Node, bool) {
	row := converter.Node{
		Type: "tableRow",
	}

	isHeader := false
	switch typed := node.(type) {
	case *extast.TableHeader:
		isHeader = true
		for cell := typed.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if converted, ok := s.convertTableCellNode(cell, isHeader); ok {
				row.Content = append(row.Content, converted)
			}
		}
	case *extast.TableRow:
		for cell := typed.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if converted, ok := s.convertTableCellNode(cell, isHeader); ok {
				row.Content = append(row.Content, converted)
			}
		}
	default:
		return converter.Node{}, false
	}

	if len(row.Content) == 0 {
		return converter.Node{}, false
	}

	return row, true
}

func (s *state) convertTableCellNode(node ast.Node, isHeader bool) (converter.Node, bool) {
	cell, ok := node.(*extast.TableCell)
	if !ok {
		return converter.Node{}, false
	}

	cellType := "tableCell"
	if isHeader {
		cellType = "tableHeader"
	}

	return converter.Node{
		Type: cellType,
		Content: []converter.Node{
			{
				Type:    "paragraph",
				Content: s.convertInlineChildren(cell, newMarkStack()),
			},
		},
	}, true
}

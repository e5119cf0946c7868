package mdconverter

import (
	"fmt"
	"strings"

	"github.com/rgonek/jira-agent-kit/converter"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func (s *state) convertDocument(root ast.Node) converter.Doc {
	return converter.Doc{
		Version: 1,
		Type:    "doc",
		Content: s.convertBlockChildren(root),
	}
}

func (s *state) convertBlockNode(node ast.Node) (converter.Node, bool) {
	switch typed := node.(type) {
	case *ast.Paragraph:
		return s.convertParagraphNode(typed)
	case *ast.TextBlock:
		return s.convertTextBlockNode(typed)
	case *ast.Heading:
		return s.convertHeadingNode(typed)
	case *ast.Blockquote:
		return s.convertBlockquoteNode(typed)
	case *ast.ThematicBreak:
		return converter.Node{Type: "rule"}, true
	case *ast.FencedCodeBlock:
		return s.convertFencedCodeBlockNode(typed)
	case *ast.CodeBlock:
		return s.convertCodeBlockNode(typed)
	case *ast.List:
		return s.convertListNode(typed)
	case *ast.HTMLBlock:
		return s.convertHTMLBlockNode(typed)
	case *extast.Table:
		return s.convertTableNode(typed)
	default:
		nodeKind := typed.Kind().String()
		textValue := strings.TrimSpace(string(node.Text(s.source)))
		if textValue == "" {
			return converter.Node{}, false
		}
		s.addWarning(
			converter.UnsupportedNodeCategory(nodeKind),
			fmt.Sprintf("unsupported markdown block node %s rendered as paragraph text", nodeKind),
		)
		return converter.Node{
			Type: "paragraph",
			Content: []converter.Node{
				{
					Type: "text",
					Text: textValue,
				},
			},
		}, true
	}
}

func (s *state) convertBlockChildren(parent ast.Node) []converter.Node {
	var content []converter.Node

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		converted, ok := s.convertBlockNode(child)
		if ok {
			content = append(content, converted)
		}
	}

	return content
}

func (s *state) warnUnknownInline(node ast.Node, stack *markStack) []converter.Node {
	textValue := strings.TrimSpace(string(node.Text(s.source)))
	if textValue == "" {
		return nil
	}

	nodeKind := node.Kind().String()
	s.addWarning(
		converter.UnsupportedNodeCategory(nodeKind),
		fmt.Sprintf("unsupported markdown inline node %s rendered as plain text", nodeKind),
	)

	return []converter.Node{
		newTextNode(textValue, stack.current()),
	}
}

package mdconverter

import (
	"strings"

	"github.com/rgonek/jira-agent-kit/converter"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func (s *state) convertInlineChildren(parent ast.Node, stack *markStack) []converter.Node {
	var content []converter.Node

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		for _, node := range s.convertInlineNode(child, stack) {
			content = appendInlineNode(content, node)
		}
	}

	return content
}

func (s *state) convertInlineNode(node ast.Node, stack *markStack) []converter.Node {
	switch typed := node.(type) {
	case *ast.Text:
		var content []converter.Node
		textValue := string(typed.Value(s.source))
		if textValue != "" {
			content = append(content, newTextNode(textValue, stack.current()))
		}

		if typed.HardLineBreak() {
			content = append(content, converter.Node{Type: "hardBreak"})
		} else if typed.SoftLineBreak() {
			content = append(content, newTextNode(" ", stack.current()))
		}

		return content

	case *ast.String:
		return []converter.Node{
			newTextNode(string(typed.Value), stack.current()),
		}

	case *ast.Emphasis:
		markType := "em"
		if typed.Level >= 2 {
			markType = "strong"
		}
		stack.push(converter.Mark{Type: markType})
		content := s.convertInlineChildren(typed, stack)
		stack.popByType(markType)
		return content

	case *extast.Strikethrough:
		stack.push(converter.Mark{Type: "strike"})
		content := s.convertInlineChildren(typed, stack)
		stack.popByType("strike")
		return content

	case *ast.CodeSpan:
		stack.push(converter.Mark{Type: "code"})
		content := s.convertInlineChildren(typed, stack)
		stack.popByType("code")
		return content

	case *ast.Link:
		href := strings.TrimSpace(string(typed.Destination))
		if href == "" {
			return s.convertInlineChildren(typed, stack)
		}

		mark := converter.Mark{
			Type: "link",
			Attrs: map[string]interface{}{
				"href": href,
			},
		}
		if title := strings.TrimSpace(string(typed.Title)); title != "" {
			mark.Attrs["title"] = title
		}

		stack.push(mark)
		content := s.convertInlineChildren(typed, stack)
		stack.popByType("link")
		return content

	case *ast.AutoLink:
		url := strings.TrimSpace(string(typed.URL(s.source)))
		label := strings.TrimSpace(string(typed.Label(s.source)))
		if typed.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(url, "mailto:") {
			url = "mailto:" + url
		}
		if label == "" {
			label = url
		}

		marks := append(stack.current(), converter.Mark{
			Type: "link",
			Attrs: map[string]interface{}{
				"href": url,
			},
		})
		return []converter.Node{newTextNode(label, marks)}

	case *ast.RawHTML:
		return s.convertRawHTML(rawHTMLValue(typed, s.source), stack)

	case *ast.Image:
		alt := strings.TrimSpace(string(typed.Text(s.source)))
		if alt == "" {
			alt = "Image"
		}
		s.addWarning(
			converter.WarnMedia,
			"inline image converted to its alt text; media uploads are handled separately",
		)
		return []converter.Node{
			newTextNode(alt, stack.current()),
		}

	default:
		if node.HasChildren() {
			return s.convertInlineChildren(node, stack)
		}
		return s.warnUnknownInline(node, stack)
	}
}

func rawHTMLValue(node *ast.RawHTML, source []byte) string {
	var sb strings.Builder
	for i := 0; i < node.Segments.Len(); i++ {
		segment := node.Segments.At(i)
		sb.Write(segment.Value(source))
	}
	return sb.String()
}

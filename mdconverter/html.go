package mdconverter

import (
	"strings"

	"github.com/rgonek/jira-agent-kit/converter"
	"github.com/yuin/goldmark/ast"
	xhtml "golang.org/x/net/html"
)

// convertRawHTML handles the small set of inline HTML constructs the
// authoring markup may carry. Underline toggles a mark, <br> becomes a hard
// break, everything else passes through as literal text.
func (s *state) convertRawHTML(raw string, stack *markStack) []converter.Node {
	tokenizer := xhtml.NewTokenizer(strings.NewReader(raw))

	switch tokenizer.Next() {
	case xhtml.StartTagToken:
		name, _ := tokenizer.TagName()
		switch string(name) {
		case "u":
			stack.push(converter.Mark{Type: "underline"})
			return nil
		case "br":
			return []converter.Node{{Type: "hardBreak"}}
		}
	case xhtml.SelfClosingTagToken:
		name, _ := tokenizer.TagName()
		if string(name) == "br" {
			return []converter.Node{{Type: "hardBreak"}}
		}
	case xhtml.EndTagToken:
		name, _ := tokenizer.TagName()
		if string(name) == "u" {
			stack.popByType("underline")
			return nil
		}
	}

	// Unrecognized inline syntax passes through as literal text.
	return []converter.Node{newTextNode(raw, stack.current())}
}

// convertHTMLBlockNode flattens an HTML block to its visible text with a
// warning; block-level HTML has no document tree equivalent here.
func (s *state) convertHTMLBlockNode(node *ast.HTMLBlock) (converter.Node, bool) {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		sb.Write(segment.Value(s.source))
	}
	if node.HasClosure() {
		sb.Write(node.ClosureLine.Value(s.source))
	}

	textValue := strings.TrimSpace(htmlText(sb.String()))

	s.addWarning(
		converter.UnsupportedNodeCategory("HTMLBlock"),
		"html block flattened to its text content",
	)

	if textValue == "" {
		return converter.Node{}, false
	}

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

// htmlText strips tags from an HTML fragment, keeping its text content.
func htmlText(fragment string) string {
	tokenizer := xhtml.NewTokenizer(strings.NewReader(fragment))

	var sb strings.Builder
	for {
		tokenType := tokenizer.Next()
		if tokenType == xhtml.ErrorToken {
			return sb.String()
		}
		if tokenType == xhtml.TextToken {
			sb.Write(tokenizer.Text())
		}
	}
}

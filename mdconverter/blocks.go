package mdconverter

import (
	"strings"

	"github.com/rgonek/jira-agent-kit/converter"
	"github.com/yuin/goldmark/ast"
)

func (s *state) convertParagraphNode(node *ast.Paragraph) (converter.Node, bool) {
	content := s.convertInlineChildren(node, newMarkStack())
	if len(content) == 0 {
		return converter.Node{}, false
	}

	return converter.Node{
		Type:    "paragraph",
		Content: content,
	}, true
}

// convertTextBlockNode handles the tight-list flavor of a paragraph.
func (s *state) convertTextBlockNode(node *ast.TextBlock) (converter.Node, bool) {
	content := s.convertInlineChildren(node, newMarkStack())
	if len(content) == 0 {
		return converter.Node{}, false
	}

	return converter.Node{
		Type:    "paragraph",
		Content: content,
	}, true
}

func (s *state) convertHeadingNode(node *ast.Heading) (converter.Node, bool) {
	content := s.convertInlineChildren(node, newMarkStack())

	level := node.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}

	return converter.Node{
		Type:    "heading",
		Content: content,
		Attrs: map[string]interface{}{
			"level": level,
		},
	}, true
}

func (s *state) convertBlockquoteNode(node *ast.Blockquote) (converter.Node, bool) {
	content := s.convertBlockChildren(node)
	if len(content) == 0 {
		return converter.Node{}, false
	}

	return converter.Node{
		Type:    "blockquote",
		Content: content,
	}, true
}

func (s *state) convertFencedCodeBlockNode(node *ast.FencedCodeBlock) (converter.Node, bool) {
	language := strings.TrimSpace(string(node.Language(s.source)))
	if mapped, ok := s.config.LanguageMap[strings.ToLower(language)]; ok {
		language = mapped
	}

	codeBlock := converter.Node{
		Type: "codeBlock",
	}
	if language != "" {
		codeBlock.Attrs = map[string]interface{}{
			"language": language,
		}
	}

	if textValue := s.codeBlockText(node); textValue != "" {
		codeBlock.Content = []converter.Node{
			{
				Type: "text",
				Text: textValue,
			},
		}
	}

	return codeBlock, true
}

func (s *state) convertCodeBlockNode(node *ast.CodeBlock) (converter.Node, bool) {
	codeBlock := converter.Node{
		Type: "codeBlock",
	}

	if textValue := s.codeBlockText(node); textValue != "" {
		codeBlock.Content = []converter.Node{
			{
				Type: "text",
				Text: textValue,
			},
		}
	}

	return codeBlock, true
}

// codeBlockText joins the raw source lines of a code block.
func (s *state) codeBlockText(node ast.Node) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		sb.Write(segment.Value(s.source))
	}
	return strings.TrimRight(sb.String(), "\n")
}

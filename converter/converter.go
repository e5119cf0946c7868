package converter

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Converter converts a rich-text document tree to markdown.
type Converter struct {
	config Config
}

// state carries per-conversion data so a single Converter can be reused.
type state struct {
	config   Config
	warnings Warnings
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{config: cfg}, nil
}

// Convert takes a document tree as JSON and returns markdown plus warnings.
// Structural failures never produce an error; they are reported under the
// "error" warning category with an empty markdown result.
func (c *Converter) Convert(input []byte) Result {
	var doc Doc
	if err := json.Unmarshal(input, &doc); err != nil {
		warnings := Warnings{}
		warnings.Add(WarnError, fmt.Sprintf("failed to parse document JSON: %v", err))
		return Result{Warnings: warnings}
	}

	return c.ConvertDoc(doc)
}

// ConvertDoc converts an in-memory document tree to markdown.
func (c *Converter) ConvertDoc(doc Doc) Result {
	s := &state{
		config:   c.config,
		warnings: Warnings{},
	}

	if doc.Type != "doc" {
		s.warnings.Add(WarnError, fmt.Sprintf("invalid root node type %q, expected \"doc\"", doc.Type))
		return Result{Warnings: s.warnings}
	}

	content := s.convertChildren(doc.Content)
	if content != "" {
		// Trim to avoid excessive newlines at the end, then ensure exactly one.
		content = strings.TrimRight(content, "\n") + "\n"
	}

	return Result{
		Markdown: content,
		Warnings: s.warnings,
	}
}

func (s *state) addWarning(category, message string) {
	s.warnings.Add(category, message)
}

// convertChildren converts a block sequence. A pre-pass folds the authoring
// idiom "paragraph holding only a language name directly before a code block"
// into the code block's language attribute.
func (s *state) convertChildren(content []Node) string {
	var sb strings.Builder

	for index := 0; index < len(content); index++ {
		node := content[index]

		if index+1 < len(content) && content[index+1].Type == "codeBlock" {
			if language, ok := languageCaption(node); ok {
				block := content[index+1]
				if block.GetStringAttr("language", "") == "" {
					// Copy the attrs; the caller's tree must stay untouched.
					attrs := make(map[string]interface{}, len(block.Attrs)+1)
					for key, value := range block.Attrs {
						attrs[key] = value
					}
					attrs["language"] = language
					block.Attrs = attrs
					sb.WriteString(s.convertNode(block))
					index++
					continue
				}
			}
		}

		sb.WriteString(s.convertNode(node))
	}

	return sb.String()
}

// languageCaption reports whether node is a paragraph containing only a
// recognized language name, returning the normalized language.
func languageCaption(node Node) (string, bool) {
	if node.Type != "paragraph" || len(node.Content) != 1 {
		return "", false
	}
	text := node.Content[0]
	if text.Type != "text" || len(text.Marks) > 0 {
		return "", false
	}
	return matchCodeLanguage(text.Text)
}

func (s *state) convertNode(node Node) string {
	switch node.Type {
	case "paragraph":
		return s.convertParagraph(node)
	case "heading":
		return s.convertHeading(node)
	case "text":
		return s.convertText(node)
	case "codeBlock":
		return s.convertCodeBlock(node)
	case "blockquote":
		return s.convertBlockquote(node)
	case "rule":
		return s.convertRule()
	case "hardBreak":
		return s.convertHardBreak()
	case "bulletList":
		return s.convertBulletList(node)
	case "orderedList":
		return s.convertOrderedList(node)
	case "taskList":
		return s.convertTaskList(node)
	case "table":
		return s.convertTable(node)
	case "mediaSingle":
		return s.convertMediaSingle(node)
	case "mediaGroup":
		return s.convertMediaGroup(node)
	case "media":
		return s.convertMedia(node)
	case "mention":
		return s.convertMention(node)
	case "emoji":
		return s.convertEmoji(node)
	case "status":
		return s.convertStatus(node)
	case "date":
		return s.convertDate(node)
	case "inlineCard":
		return s.convertInlineCard(node)
	default:
		return s.convertUnknownNode(node)
	}
}

// convertUnknownNode flattens an unrecognized node to its text content and
// records an unsupported-node warning tagged by kind.
func (s *state) convertUnknownNode(node Node) string {
	s.addWarning(
		UnsupportedNodeCategory(node.Type),
		fmt.Sprintf("unsupported node type %q rendered as plain text", node.Type),
	)

	text := collectText(node)
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return text + "\n\n"
}

// collectText gathers raw text from a node and all of its descendants.
func collectText(node Node) string {
	if node.Type == "text" {
		return node.Text
	}

	var sb strings.Builder
	for _, child := range node.Content {
		sb.WriteString(collectText(child))
	}
	return sb.String()
}

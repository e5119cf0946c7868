package mdconverter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/jira-agent-kit/converter"
)

func newTestConverter(t testing.TB, cfg Config) *Converter {
	t.Helper()

	conv, err := New(cfg)
	require.NoError(t, err)

	return conv
}

func TestConvertParagraphAndHeading(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("## Title\n\nHello world\n")

	require.Len(t, result.Doc.Content, 2)
	assert.Equal(t, 1, result.Doc.Version)
	assert.Equal(t, "doc", result.Doc.Type)

	heading := result.Doc.Content[0]
	assert.Equal(t, "heading", heading.Type)
	assert.Equal(t, 2, heading.Attrs["level"])
	require.Len(t, heading.Content, 1)
	assert.Equal(t, "Title", heading.Content[0].Text)

	paragraph := result.Doc.Content[1]
	assert.Equal(t, "paragraph", paragraph.Type)
	require.Len(t, paragraph.Content, 1)
	assert.Equal(t, "Hello world", paragraph.Content[0].Text)
	assert.Empty(t, result.Warnings)
}

func TestConvertStrongAndEmMarks(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("plain **bold** and *italic*\n")

	require.Len(t, result.Doc.Content, 1)
	content := result.Doc.Content[0].Content
	require.Len(t, content, 4)

	assert.Equal(t, "plain ", content[0].Text)
	assert.Nil(t, content[0].Marks)

	assert.Equal(t, "bold", content[1].Text)
	require.Len(t, content[1].Marks, 1)
	assert.Equal(t, "strong", content[1].Marks[0].Type)

	assert.Equal(t, " and ", content[2].Text)

	assert.Equal(t, "italic", content[3].Text)
	require.Len(t, content[3].Marks, 1)
	assert.Equal(t, "em", content[3].Marks[0].Type)
}

func TestConvertStrikethroughAndCodeSpan(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("~~gone~~ and `x+1`\n")

	content := result.Doc.Content[0].Content
	require.Len(t, content, 3)
	assert.Equal(t, "strike", content[0].Marks[0].Type)
	assert.Equal(t, "code", content[2].Marks[0].Type)
	assert.Equal(t, "x+1", content[2].Text)
}

func TestConvertLinkWithTitle(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert(`[docs](https://example.com "Example")` + "\n")

	content := result.Doc.Content[0].Content
	require.Len(t, content, 1)
	require.Len(t, content[0].Marks, 1)

	mark := content[0].Marks[0]
	assert.Equal(t, "link", mark.Type)
	assert.Equal(t, "https://example.com", mark.Attrs["href"])
	assert.Equal(t, "Example", mark.Attrs["title"])
}

func TestConvertAutoLinkEmail(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("<dev@example.com>\n")

	content := result.Doc.Content[0].Content
	require.Len(t, content, 1)
	assert.Equal(t, "dev@example.com", content[0].Text)
	require.Len(t, content[0].Marks, 1)
	assert.Equal(t, "mailto:dev@example.com", content[0].Marks[0].Attrs["href"])
}

func TestConvertFencedCodeBlockLanguageMapped(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("```C#\nvar x = 1;\n```\n")

	require.Len(t, result.Doc.Content, 1)
	block := result.Doc.Content[0]
	assert.Equal(t, "codeBlock", block.Type)
	assert.Equal(t, "csharp", block.Attrs["language"])
	require.Len(t, block.Content, 1)
	assert.Equal(t, "var x = 1;", block.Content[0].Text)
}

func TestConvertAdjacentTextMerged(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("line one\nline two\n")

	content := result.Doc.Content[0].Content
	require.Len(t, content, 1)
	assert.Equal(t, "line one line two", content[0].Text)
}

func TestConvertImageDegradesToAltText(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("![diagram](https://example.com/a.png)\n")

	content := result.Doc.Content[0].Content
	require.Len(t, content, 1)
	assert.Equal(t, "diagram", content[0].Text)
	require.Len(t, result.Warnings[converter.WarnMedia], 1)
}

func TestConvertUnderlineHTML(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("before <u>underlined</u> after\n")

	content := result.Doc.Content[0].Content
	require.Len(t, content, 3)

	assert.Equal(t, "before ", content[0].Text)
	assert.Nil(t, content[0].Marks)

	assert.Equal(t, "underlined", content[1].Text)
	require.Len(t, content[1].Marks, 1)
	assert.Equal(t, "underline", content[1].Marks[0].Type)

	assert.Equal(t, " after", content[2].Text)
	assert.Nil(t, content[2].Marks)
}

func TestConvertBreakTagBecomesHardBreak(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("first<br>second\n")

	content := result.Doc.Content[0].Content
	require.Len(t, content, 3)
	assert.Equal(t, "first", content[0].Text)
	assert.Equal(t, "hardBreak", content[1].Type)
	assert.Equal(t, "second", content[2].Text)
}

func TestConvertHTMLBlockFlattened(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("<div>\nblock text\n</div>\n")

	require.Len(t, result.Doc.Content, 1)
	paragraph := result.Doc.Content[0]
	assert.Equal(t, "paragraph", paragraph.Type)
	assert.Equal(t, "block text", paragraph.Content[0].Text)
	require.Len(t, result.Warnings[converter.UnsupportedNodeCategory("HTMLBlock")], 1)
}

func TestConvertBlockquote(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("> quoted line\n")

	require.Len(t, result.Doc.Content, 1)
	quote := result.Doc.Content[0]
	assert.Equal(t, "blockquote", quote.Type)
	require.Len(t, quote.Content, 1)
	assert.Equal(t, "paragraph", quote.Content[0].Type)
}

func TestConvertThematicBreak(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("above\n\n---\n\nbelow\n")

	require.Len(t, result.Doc.Content, 3)
	assert.Equal(t, "rule", result.Doc.Content[1].Type)
}

func TestResultJSONHoldsDocOnly(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("hello\n")

	data, err := result.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"doc"`)
	assert.NotContains(t, string(data), "warnings")
}

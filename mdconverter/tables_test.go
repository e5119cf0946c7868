package mdconverter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTable(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("| Key | Value |\n| --- | --- |\n| env | prod |\n")

	require.Len(t, result.Doc.Content, 1)
	table := result.Doc.Content[0]
	assert.Equal(t, "table", table.Type)
	require.Len(t, table.Content, 2)

	header := table.Content[0]
	assert.Equal(t, "tableRow", header.Type)
	require.Len(t, header.Content, 2)
	assert.Equal(t, "tableHeader", header.Content[0].Type)
	assert.Equal(t, "paragraph", header.Content[0].Content[0].Type)
	assert.Equal(t, "Key", header.Content[0].Content[0].Content[0].Text)

	data := table.Content[1]
	assert.Equal(t, "tableCell", data.Content[0].Type)
	assert.Equal(t, "env", data.Content[0].Content[0].Content[0].Text)
}

func TestConvertTableCellMarks(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("| A |\n| --- |\n| **bold** |\n")

	table := result.Doc.Content[0]
	cell := table.Content[1].Content[0]
	text := cell.Content[0].Content[0]
	assert.Equal(t, "bold", text.Text)
	require.Len(t, text.Marks, 1)
	assert.Equal(t, "strong", text.Marks[0].Type)
}

package mdconverter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertBulletList(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("- one\n- two\n")

	require.Len(t, result.Doc.Content, 1)
	list := result.Doc.Content[0]
	assert.Equal(t, "bulletList", list.Type)
	require.Len(t, list.Content, 2)

	item := list.Content[0]
	assert.Equal(t, "listItem", item.Type)
	require.Len(t, item.Content, 1)
	assert.Equal(t, "paragraph", item.Content[0].Type)
	assert.Equal(t, "one", item.Content[0].Content[0].Text)
}

func TestConvertOrderedListWithStart(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("3. three\n4. four\n")

	require.Len(t, result.Doc.Content, 1)
	list := result.Doc.Content[0]
	assert.Equal(t, "orderedList", list.Type)
	assert.Equal(t, 3, list.Attrs["order"])
	require.Len(t, list.Content, 2)
}

func TestConvertTaskListStates(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("- [x] done item\n- [ ] open item\n")

	require.Len(t, result.Doc.Content, 1)
	list := result.Doc.Content[0]
	assert.Equal(t, "taskList", list.Type)
	require.Len(t, list.Content, 2)

	done := list.Content[0]
	assert.Equal(t, "taskItem", done.Type)
	assert.Equal(t, "DONE", done.Attrs["state"])
	require.Len(t, done.Content, 1)
	assert.Equal(t, "done item", done.Content[0].Text)

	open := list.Content[1]
	assert.Equal(t, "TODO", open.Attrs["state"])
	assert.Equal(t, "open item", open.Content[0].Text)
}

func TestConvertTaskListKeepsInlineMarks(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("- [ ] fix **urgent** bug\n")

	item := result.Doc.Content[0].Content[0]
	require.Len(t, item.Content, 3)
	assert.Equal(t, "fix ", item.Content[0].Text)
	assert.Equal(t, "urgent", item.Content[1].Text)
	require.Len(t, item.Content[1].Marks, 1)
	assert.Equal(t, "strong", item.Content[1].Marks[0].Type)
}

func TestTaskItemBlockChildEmittedAsSibling(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("- [ ] item\n  ```go\n  x := 1\n  ```\n")

	list := result.Doc.Content[0]
	assert.Equal(t, "taskList", list.Type)
	require.Len(t, list.Content, 2)

	item := list.Content[0]
	assert.Equal(t, "taskItem", item.Type)
	assert.Equal(t, "item", item.Content[0].Text)

	block := list.Content[1]
	assert.Equal(t, "codeBlock", block.Type)
	assert.Equal(t, "go", block.Attrs["language"])
	require.Len(t, block.Content, 1)
	assert.Contains(t, block.Content[0].Text, "x := 1")
}

func TestMixedListNotTreatedAsTaskList(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("- [x] checked\n- plain item\n")

	list := result.Doc.Content[0]
	assert.Equal(t, "bulletList", list.Type)
}

func TestConvertNestedList(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result := conv.Convert("- outer\n  - inner\n")

	list := result.Doc.Content[0]
	require.Len(t, list.Content, 1)

	item := list.Content[0]
	require.Len(t, item.Content, 2)
	assert.Equal(t, "paragraph", item.Content[0].Type)
	assert.Equal(t, "bulletList", item.Content[1].Type)
}

package mdconverter

import (
	"strings"

	"github.com/rgonek/jira-agent-kit/converter"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func (s *state) convertListNode(node *ast.List) (converter.Node, bool) {
	if s.isTaskList(node) {
		return s.convertTaskListNode(node)
	}

	listNode := converter.Node{
		Type: "bulletList",
	}
	if node.IsOrdered() {
		listNode.Type = "orderedList"
		if node.Start > 0 {
			listNode.Attrs = map[string]interface{}{
				"order": node.Start,
			}
		}
	}

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if itemNode, ok := s.convertListItemNode(child); ok {
			listNode.Content = append(listNode.Content, itemNode)
		}
	}

	if len(listNode.Content) == 0 {
		return converter.Node{}, false
	}

	return listNode, true
}

func (s *state) convertListItemNode(node ast.Node) (converter.Node, bool) {
	listItem, ok := node.(*ast.ListItem)
	if !ok {
		return converter.Node{}, false
	}

	return converter.Node{
		Type:    "listItem",
		Content: s.convertBlockChildren(listItem),
	}, true
}

// isTaskList reports whether every item of the list starts with a GFM task
// checkbox. Mixed lists are treated as plain lists.
func (s *state) isTaskList(node *ast.List) bool {
	hasTaskItems := false

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			return false
		}

		container := item.FirstChild()
		if container == nil {
			return false
		}

		switch typed := container.(type) {
		case *ast.TextBlock:
			if _, ok := typed.FirstChild().(*extast.TaskCheckBox); ok {
				hasTaskItems = true
				continue
			}
			return false
		case *ast.Paragraph:
			if _, ok := typed.FirstChild().(*extast.TaskCheckBox); ok {
				hasTaskItems = true
				continue
			}
			return false
		default:
			return false
		}
	}

	return hasTaskItems
}

func (s *state) convertTaskListNode(node *ast.List) (converter.Node, bool) {
	taskList := converter.Node{
		Type: "taskList",
	}

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}

		taskItem, nestedLists, hasTaskItem := s.convertTaskListItem(item)
		if hasTaskItem {
			taskList.Content = append(taskList.Content, taskItem)
		}
		taskList.Content = append(taskList.Content, nestedLists...)
	}

	if len(taskList.Content) == 0 {
		return converter.Node{}, false
	}

	return taskList, true
}

func (s *state) convertTaskListItem(node *ast.ListItem) (converter.Node, []converter.Node, bool) {
	taskItem := converter.Node{
		Type: "taskItem",
		Attrs: map[string]interface{}{
			"state": "TODO",
		},
	}

	var nestedLists []converter.Node
	hasInlineContent := false

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch typed := child.(type) {
		case *ast.TextBlock, *ast.Paragraph:
			inlineContent, itemState, hasCheckbox := s.convertTaskInlineContent(typed)
			if hasCheckbox {
				taskItem.Attrs["state"] = itemState
				hasInlineContent = true
			}
			if len(inlineContent) == 0 {
				continue
			}
			if len(taskItem.Content) > 0 {
				taskItem.Content = append(taskItem.Content, converter.Node{Type: "hardBreak"})
			}
			for _, inlineNode := range inlineContent {
				taskItem.Content = appendInlineNode(taskItem.Content, inlineNode)
			}
			hasInlineContent = true
		case *ast.List:
			if converted, ok := s.convertListNode(typed); ok {
				nestedLists = append(nestedLists, converted)
			}
		default:
			if converted, ok := s.convertBlockNode(typed); ok {
				nestedLists = append(nestedLists, converted)
			}
		}
	}

	if !hasInlineContent {
		return converter.Node{}, nestedLists, false
	}

	return taskItem, nestedLists, true
}

func (s *state) convertTaskInlineContent(container ast.Node) ([]converter.Node, string, bool) {
	stack := newMarkStack()
	itemState := "TODO"
	hasCheckbox := false
	var content []converter.Node

	for child := container.FirstChild(); child != nil; child = child.NextSibling() {
		if checkbox, isCheckbox := child.(*extast.TaskCheckBox); isCheckbox {
			hasCheckbox = true
			if checkbox.IsChecked {
				itemState = "DONE"
			}
			continue
		}

		for _, node := range s.convertInlineNode(child, stack) {
			// The parser leaves the separator space after the checkbox in
			// the first text segment.
			if hasCheckbox && len(content) == 0 && node.Type == "text" {
				node.Text = strings.TrimPrefix(node.Text, " ")
				if node.Text == "" {
					continue
				}
			}
			content = appendInlineNode(content, node)
		}
	}

	return content, itemState, hasCheckbox
}

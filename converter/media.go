package converter

import (
	"fmt"
	"strings"
)

// convertMediaSingle converts a mediaSingle wrapper node
func (s *state) convertMediaSingle(node Node) string {
	if len(node.Content) == 0 {
		return ""
	}

	content := s.convertChildren(node.Content)
	if strings.TrimSpace(content) == "" {
		return ""
	}
	return strings.TrimRight(content, "\n") + "\n\n"
}

// convertMediaGroup converts a mediaGroup node
func (s *state) convertMediaGroup(node Node) string {
	if len(node.Content) == 0 {
		return ""
	}

	var items []string
	for _, child := range node.Content {
		if result := s.convertNode(child); result != "" {
			items = append(items, result)
		}
	}
	return strings.Join(items, "\n") + "\n\n"
}

// convertMedia converts a media node to an image link or a placeholder
func (s *state) convertMedia(node Node) string {
	mediaType := node.GetStringAttr("type", "")
	id := node.GetStringAttr("id", "")
	alt := node.GetStringAttr("alt", "")
	url := node.GetStringAttr("url", "")

	// External image
	if mediaType == "image" && url != "" {
		if alt == "" {
			alt = "Image"
		}
		return fmt.Sprintf("![%s](%s)", alt, url)
	}

	// Internal media resolved via configured base URL.
	if url == "" && id != "" && s.config.MediaBaseURL != "" {
		if alt == "" {
			alt = "Image"
		}
		base := s.config.MediaBaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		return fmt.Sprintf("![%s](%s%s)", alt, base, id)
	}

	// Without a resolvable URL the media degrades to a placeholder.
	label := "Media"
	switch mediaType {
	case "image":
		label = "Image"
	case "file":
		label = "File"
	}

	if id == "" {
		s.addWarning(WarnMissingAttr, "media node missing id")
		return fmt.Sprintf("[%s: (no id)]", label)
	}

	s.addWarning(WarnMedia, fmt.Sprintf("media %s replaced with placeholder", id))
	return fmt.Sprintf("[%s: %s]", label, id)
}

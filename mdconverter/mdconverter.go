// Package mdconverter converts authoring markdown into the rich-text
// document tree posted to the ticketing platform.
package mdconverter

import (
	"encoding/json"

	"github.com/rgonek/jira-agent-kit/converter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Converter converts markdown to a document tree.
type Converter struct {
	config Config
	parser goldmark.Markdown
}

type state struct {
	config   Config
	source   []byte
	warnings converter.Warnings
}

// Result holds the output of a markdown-to-document conversion.
type Result struct {
	Doc      converter.Doc      `json:"doc"`
	Warnings converter.Warnings `json:"warnings,omitempty"`
}

// JSON marshals the document tree into the wire shape expected by the
// transport layer.
func (r Result) JSON() ([]byte, error) {
	return json.Marshal(r.Doc)
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{
		config: cfg,
		parser: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}, nil
}

// Convert takes a markdown document and returns a document tree. Malformed
// markdown never fails: unrecognized constructs degrade to the closest
// representable structure with a warning.
func (c *Converter) Convert(markdown string) Result {
	s := &state{
		config:   c.config,
		source:   []byte(markdown),
		warnings: converter.Warnings{},
	}

	root := c.parser.Parser().Parse(text.NewReader(s.source))
	doc := s.convertDocument(root)

	return Result{
		Doc:      doc,
		Warnings: s.warnings,
	}
}

func (s *state) addWarning(category, message string) {
	s.warnings.Add(category, message)
}

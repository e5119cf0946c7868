package converter

// Warnings maps a construct category (e.g. "text-color", "task-list",
// "unsupported-node:<kind>") to the messages recorded for it during a single
// conversion call. A fresh set is built per call; sets are never merged
// across calls.
type Warnings map[string][]string

// Warning categories shared by both conversion directions.
const (
	WarnError       = "error"
	WarnUnderline   = "underline"
	WarnTextColor   = "text-color"
	WarnSubSup      = "subsup"
	WarnTaskList    = "task-list"
	WarnMedia       = "media"
	WarnUnknownMark = "unknown-mark"
	WarnMissingAttr = "missing-attribute"

	warnUnsupportedPrefix = "unsupported-node"
)

// UnsupportedNodeCategory builds the per-kind category for unknown nodes.
func UnsupportedNodeCategory(kind string) string {
	return warnUnsupportedPrefix + ":" + kind
}

// Add records a message under a construct category.
func (w Warnings) Add(category, message string) {
	w[category] = append(w[category], message)
}

// HasError reports whether the conversion failed entirely. Structural
// failures are recorded under the "error" category with an empty result
// instead of an error return, so callers must check this.
func (w Warnings) HasError() bool {
	return len(w[WarnError]) > 0
}

// Result holds the output of a document-to-markdown conversion.
type Result struct {
	Markdown string   `json:"markdown"`
	Warnings Warnings `json:"warnings,omitempty"`
}

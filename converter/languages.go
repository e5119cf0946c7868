package converter

import "strings"

// knownCodeLanguages is the fixed set of language names recognized by the
// caption pre-pass (a paragraph holding only a language name directly before
// a code block is folded into the block's language attribute).
var knownCodeLanguages = map[string]string{
	"bash":        "bash",
	"c":           "c",
	"c#":          "csharp",
	"c++":         "cpp",
	"cpp":         "cpp",
	"csharp":      "csharp",
	"css":         "css",
	"dockerfile":  "dockerfile",
	"go":          "go",
	"graphql":     "graphql",
	"groovy":      "groovy",
	"html":        "html",
	"java":        "java",
	"javascript":  "javascript",
	"json":        "json",
	"kotlin":      "kotlin",
	"objective-c": "objective-c",
	"perl":        "perl",
	"php":         "php",
	"plaintext":   "plaintext",
	"python":      "python",
	"ruby":        "ruby",
	"rust":        "rust",
	"scala":       "scala",
	"shell":       "shell",
	"sql":         "sql",
	"swift":       "swift",
	"typescript":  "typescript",
	"xml":         "xml",
	"yaml":        "yaml",
}

// matchCodeLanguage reports whether text is a recognized language name and
// returns its normalized form. Matching is case-insensitive.
func matchCodeLanguage(text string) (string, bool) {
	normalized, ok := knownCodeLanguages[strings.ToLower(strings.TrimSpace(text))]
	return normalized, ok
}

package fields

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = time.RFC3339
)

// dateLayouts are tried in order before falling back to natural-language
// parsing.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// datetimeLayouts are tried in order for timestamp fields.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// dateParser handles phrases like "tomorrow" or "next friday". Parsing is
// relative to time.Now at call time.
var dateParser = when.New(nil)

func init() {
	dateParser.Add(en.All...)
	dateParser.Add(common.All...)
}

func parseWhen(text string) (time.Time, bool) {
	result, err := dateParser.Parse(text, time.Now())
	if err != nil || result == nil {
		return time.Time{}, false
	}
	return result.Time, true
}

func formatDate(field ResolvedField, raw interface{}) (FormatResult, error) {
	text := strings.TrimSpace(stringify(raw))

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			return FormatResult{
				Value:       parsed.Format(dateLayout),
				Description: fmt.Sprintf("normalized date to %s", parsed.Format(dateLayout)),
			}, nil
		}
	}

	if parsed, ok := parseWhen(text); ok {
		return FormatResult{
			Value:       parsed.Format(dateLayout),
			Description: fmt.Sprintf("interpreted %q as %s", text, parsed.Format(dateLayout)),
		}, nil
	}

	return FormatResult{}, &FormatError{
		Field:   field.OriginalName,
		Message: fmt.Sprintf("%q is not a recognizable date", text),
	}
}

func formatDatetime(field ResolvedField, raw interface{}) (FormatResult, error) {
	text := strings.TrimSpace(stringify(raw))

	for _, layout := range datetimeLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			return FormatResult{
				Value:       parsed.Format(datetimeLayout),
				Description: fmt.Sprintf("normalized timestamp to %s", parsed.Format(datetimeLayout)),
			}, nil
		}
	}

	if parsed, ok := parseWhen(text); ok {
		return FormatResult{
			Value:       parsed.Format(datetimeLayout),
			Description: fmt.Sprintf("interpreted %q as %s", text, parsed.Format(datetimeLayout)),
		}, nil
	}

	return FormatResult{}, &FormatError{
		Field:   field.OriginalName,
		Message: fmt.Sprintf("%q is not a recognizable timestamp", text),
	}
}

package slot

import "strings"

// Display defaults for name summarization.
const (
	DefaultMaxNames   = 2
	DefaultMaxNameLen = 24
)

const ellipsis = "…"

// nameDelimiter reports whether r separates names in a backend name list.
// The spreadsheet mixes the ideographic comma with full- and half-width
// commas depending on who typed the row.
func nameDelimiter(r rune) bool {
	return r == '、' || r == '，' || r == ','
}

// SplitNames splits a delimited name list, trimming whitespace and
// dropping empty segments.
func SplitNames(names string) []string {
	parts := strings.FieldsFunc(names, nameDelimiter)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ShortNames compresses a delimited name list into a short display form:
// the first maxNames names joined with 、, with an ellipsis appended when
// names were dropped or the original string exceeds maxLen runes. The
// full list is a display concern of the caller; it is never discarded.
func ShortNames(names string, maxNames, maxLen int) string {
	if names == "" {
		return ""
	}
	parts := SplitNames(names)
	if len(parts) == 0 {
		return ""
	}

	keep := parts
	if len(keep) > maxNames {
		keep = keep[:maxNames]
	}
	short := strings.Join(keep, "、")

	if len(parts) > maxNames || len([]rune(names)) > maxLen {
		short += ellipsis
	}
	return short
}

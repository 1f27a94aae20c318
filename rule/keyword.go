package rule

import (
	"slices"
	"strings"
)

// Name derives the variable identifier for a keyword: leading dashes are
// stripped and remaining dashes become underscores, so "--skip-it" yields
// "skip_it". Subcommand keywords pass through unchanged apart from the dash
// mapping.
func Name(keyword string) string {
	return strings.ReplaceAll(strings.TrimLeft(keyword, "-"), "-", "_")
}

// Names derives the variable identifiers for every keyword, in order.
func Names(keywords []string) []string {
	names := make([]string, len(keywords))
	for i, keyword := range keywords {
		names[i] = Name(keyword)
	}
	return names
}

// SortKeywords returns the keywords in presentation order: shortest first,
// ties broken alphabetically. Matching never depends on this order, only
// display does.
func SortKeywords(keywords []string) []string {
	sorted := slices.Clone(keywords)
	slices.SortStableFunc(sorted, func(a, b string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return strings.Compare(a, b)
	})
	return sorted
}

// VarName returns the binding identifier for a keyword-bearing rule: the
// explicit name when one was set, otherwise the name of the longest keyword,
// alphabetically first on ties.
func VarName(keywords []string, explicit string) string {
	if explicit != "" {
		return Name(explicit)
	}
	var longest string
	for _, name := range Names(keywords) {
		if len(name) > len(longest) || (len(name) == len(longest) && name < longest) {
			longest = name
		}
	}
	return longest
}

// normalizeKeywords gives bare option keywords their dash prefix: one rune
// becomes "-x", anything longer becomes "--xxx". Keywords already starting
// with a dash are kept verbatim.
func normalizeKeywords(keywords []string) []string {
	normalized := make([]string, len(keywords))
	for i, keyword := range keywords {
		switch {
		case strings.HasPrefix(keyword, "-"):
			normalized[i] = keyword
		case len(keyword) == 1:
			normalized[i] = "-" + keyword
		default:
			normalized[i] = "--" + keyword
		}
	}
	return normalized
}

package domain

import (
	"strings"
)

// NormalizeText prepares text for case-insensitive matching:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of spaces into one
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MatchesQuery reports whether any of fields contains query, ignoring case.
// An empty query matches everything.
func MatchesQuery(query string, fields ...string) bool {
	q := NormalizeText(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(NormalizeText(f), q) {
			return true
		}
	}
	return false
}

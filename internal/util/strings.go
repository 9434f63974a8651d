package util

import (
	"fmt"
	"strings"
	"unicode"
)

// Slugify lowercases ASCII alphanumerics and collapses runs of spaces,
// hyphens and underscores into single hyphens. Anything else is dropped.
// Empty results fall back to "value" so the slug is always usable in a
// filename or identifier.
func Slugify(value string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(value)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			prevDash = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !prevDash && b.Len() > 0 {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		return "value"
	}
	return out
}

// HumanizeCategoryID turns an identifier like "pr-reviews" into a
// presentable name like "Pr Reviews". Used when an imported entry points
// at a category that was never registered.
func HumanizeCategoryID(id string) string {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(id))
	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return "Category"
	}
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[:1])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(words, " ")
}

// TruncateLines caps text at maxLines lines, noting how many were cut.
// A trailing newline does not count as a line of its own.
func TruncateLines(text string, maxLines int) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) <= maxLines {
		return text
	}
	omitted := len(lines) - maxLines
	return strings.Join(lines[:maxLines], "\n") +
		fmt.Sprintf("\n... (%d more lines not shown)", omitted)
}

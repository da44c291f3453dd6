package util

import "strings"

const nbsp = "\u00a0"

// NormalizeText replaces non-breaking spaces with regular spaces and trims
// surrounding whitespace.
func NormalizeText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, nbsp, " "))
}

// CollapseWhitespace reduces every run of whitespace to a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateString truncates a string to maxRunes characters (rune-based, not byte-based)
// If truncated, appends "..." to the result
func TruncateString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

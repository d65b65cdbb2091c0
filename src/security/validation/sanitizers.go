package validation

import (
	"strings"
	"unicode"
)

// StripUnprintable removes non-printable characters, allowing common whitespace
// like space, tab, newline, and carriage return.
func StripUnprintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		return -1
	}, s)
}

// CleanText trims and strips unprintable characters from free-text input.
func CleanText(s string) string {
	return strings.TrimSpace(StripUnprintable(s))
}

// CleanSymbol normalizes a ticker symbol to upper case.
func CleanSymbol(s string) string {
	return strings.ToUpper(CleanText(s))
}

// CleanTags trims every tag, drops empty ones and removes duplicates, keeping the first occurrence.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = CleanText(t)
		if t == "" || seen[strings.ToLower(t)] {
			continue
		}
		seen[strings.ToLower(t)] = true
		out = append(out, t)
	}
	return out
}

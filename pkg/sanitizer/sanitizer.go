package sanitizer

import (
	"regexp"
	"strings"
)

// MaxTextLength is the default cap applied by SanitizeText.
const MaxTextLength = 1000

var (
	angleBracketsRe = regexp.MustCompile(`[<>]`)
	jsSchemeRe      = regexp.MustCompile(`(?i)javascript\s*:`)
	eventHandlerRe  = regexp.MustCompile(`(?i)\bon\w+\s*=`)
)

// SanitizeText cleans free-text user input with a best-effort denylist:
// angle brackets, javascript: scheme prefixes and inline event-handler
// patterns are stripped, the result is trimmed and truncated to
// MaxTextLength runes.
//
// This is not an HTML parser and does not guarantee absence of every
// injection vector; render-side escaping is still the caller's job.
func SanitizeText(s string) string {
	result := angleBracketsRe.ReplaceAllString(s, "")

	// Removing a match can splice the surrounding text into a new match
	// ("javajavascript:script:" collapses to "javascript:"), so the
	// multi-character patterns run until a fixpoint.
	for {
		next := jsSchemeRe.ReplaceAllString(result, "")
		next = eventHandlerRe.ReplaceAllString(next, "")
		if next == result {
			break
		}
		result = next
	}

	result = strings.TrimSpace(result)
	return LimitLength(result, MaxTextLength)
}

// LimitLength truncates input to at most maxLength runes.
func LimitLength(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	return string(runes[:maxLength])
}

// RemoveNullBytes removes null bytes that could confuse downstream storage.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// SanitizeFields applies SanitizeText to every value of a field map,
// returning a new map. Nil input yields an empty map.
func SanitizeFields(fields map[string]string) map[string]string {
	clean := make(map[string]string, len(fields))
	for name, value := range fields {
		clean[name] = SanitizeText(value)
	}
	return clean
}

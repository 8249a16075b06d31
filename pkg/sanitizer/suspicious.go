package sanitizer

import "regexp"

// suspiciousPatterns is the hard-rejection denylist. Matching input is
// rejected outright instead of being cleaned, so an attacker probing the
// filter learns nothing from partial stripping.
var suspiciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script\b`),
	regexp.MustCompile(`(?is)</script`),
	regexp.MustCompile(`(?is)<iframe\b`),
	regexp.MustCompile(`(?is)<object\b`),
	regexp.MustCompile(`(?is)<embed\b`),
	regexp.MustCompile(`(?i)javascript\s*:`),
	regexp.MustCompile(`(?i)\bon\w+\s*=`),
}

// DetectSuspiciousInput reports whether the input matches any known-dangerous
// pattern (script/iframe/object/embed tags, javascript: scheme, inline event
// handlers). It is a gate, not a cleaner: callers should reject the whole
// submission when it returns true.
func DetectSuspiciousInput(s string) bool {
	for _, re := range suspiciousPatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// DetectSuspiciousFields runs DetectSuspiciousInput over every value of a
// field map and reports whether any value matched.
func DetectSuspiciousFields(fields map[string]string) bool {
	for _, value := range fields {
		if DetectSuspiciousInput(value) {
			return true
		}
	}
	return false
}

package validator

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// NotEmpty passes when the value is non-empty after trimming whitespace.
func NotEmpty() Predicate {
	return func(value string) bool {
		return strings.TrimSpace(value) != ""
	}
}

// MinLen passes when the value has at least min runes.
func MinLen(min int) Predicate {
	return func(value string) bool {
		return utf8.RuneCountInString(value) >= min
	}
}

// MaxLen passes when the value has at most max runes.
func MaxLen(max int) Predicate {
	return func(value string) bool {
		return utf8.RuneCountInString(value) <= max
	}
}

// Email passes when the value parses as an address and has a dotted domain,
// the usual bar for web forms.
func Email() Predicate {
	return func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}

		addr, err := mail.ParseAddress(value)
		if err != nil {
			return false
		}

		parts := strings.Split(addr.Address, "@")
		if len(parts) != 2 || parts[0] == "" {
			return false
		}

		domain := parts[1]
		return strings.Contains(domain, ".") &&
			!strings.HasPrefix(domain, ".") &&
			!strings.HasSuffix(domain, ".")
	}
}

// Phone passes for international phone numbers with an optional country code.
func Phone() Predicate {
	return func(value string) bool {
		cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(value)
		return phoneRegex.MatchString(cleaned)
	}
}

// MatchPattern passes when the value matches the compiled pattern.
func MatchPattern(re *regexp.Regexp) Predicate {
	return func(value string) bool {
		return re != nil && re.MatchString(value)
	}
}

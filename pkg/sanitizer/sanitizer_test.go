package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/sitekit/pkg/sanitizer"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "trims whitespace",
			input:    "  padded text \n",
			expected: "padded text",
		},
		{
			name:     "strips angle brackets",
			input:    "a <b>bold</b> claim",
			expected: "a bbold/b claim",
		},
		{
			name:     "strips javascript scheme",
			input:    "click javascript:alert(1)",
			expected: "click alert(1)",
		},
		{
			name:     "strips javascript scheme with spaces",
			input:    "JaVaScRiPt : alert(1)",
			expected: "alert(1)",
		},
		{
			name:     "strips inline event handler",
			input:    `img onerror=alert(1) src=x`,
			expected: "img alert(1) src=x",
		},
		{
			name:     "unicode preserved",
			input:    "héllo wörld",
			expected: "héllo wörld",
		},
		{
			name:     "scheme reconstructed by inner removal",
			input:    "javajavascript:script:",
			expected: "",
		},
		{
			name:     "handler spliced by scheme removal",
			input:    "ojavascript:nload=alert(1)",
			expected: "alert(1)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizeText(tt.input))
		})
	}
}

func TestSanitizeText_Properties(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<script>alert('xss')</script>",
		"javascript:void(0)",
		"JAVASCRIPT:payload",
		"<a href=\"javascript:alert(1)\">x</a>",
		"onload= steal()",
		"normal text with no tricks",
		"<<>>nested<<>>",
		strings.Repeat("<javascript:>", 500),
		"javajavascript:script:",
		"jAvAjavascript:sCrIpT:payload",
		"ojavascript:nload=javascript:x",
		strings.Repeat("java", 20) + strings.Repeat("javascript:", 20) + strings.Repeat("script:", 20),
	}

	for _, input := range inputs {
		out := sanitizer.SanitizeText(input)
		assert.NotContains(t, out, "<", "input %q", input)
		assert.NotContains(t, out, ">", "input %q", input)
		assert.NotContains(t, strings.ToLower(out), "javascript:", "input %q", input)
	}
}

func TestSanitizeText_Truncation(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", sanitizer.MaxTextLength+500)
	out := sanitizer.SanitizeText(long)
	assert.Len(t, out, sanitizer.MaxTextLength)
}

func TestLimitLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"shorter than limit", "abc", 10, "abc"},
		{"exactly at limit", "abc", 3, "abc"},
		{"truncated", "abcdef", 3, "abc"},
		{"zero limit", "abc", 0, ""},
		{"negative limit", "abc", -1, ""},
		{"multibyte runes counted once", "héllo", 2, "hé"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.LimitLength(tt.input, tt.max))
		})
	}
}

func TestSanitizeFields(t *testing.T) {
	t.Parallel()

	fields := map[string]string{
		"name":    "  Alice  ",
		"message": "<b>hi</b>",
	}

	clean := sanitizer.SanitizeFields(fields)
	assert.Equal(t, "Alice", clean["name"])
	assert.Equal(t, "bhi/b", clean["message"])
	// Originals are untouched.
	assert.Equal(t, "  Alice  ", fields["name"])

	assert.NotNil(t, sanitizer.SanitizeFields(nil))
	assert.Empty(t, sanitizer.SanitizeFields(nil))
}

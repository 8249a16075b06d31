package validator_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/dmitrymomot/sitekit/pkg/validator"

	"github.com/stretchr/testify/assert"
)

func TestNotEmpty(t *testing.T) {
	t.Parallel()

	p := validator.NotEmpty()
	assert.True(t, p("hello"))
	assert.False(t, p(""))
	assert.False(t, p("   "))
	assert.False(t, p("\t\n"))
}

func TestMinLen(t *testing.T) {
	t.Parallel()

	p := validator.MinLen(3)
	assert.True(t, p("abc"))
	assert.True(t, p("abcd"))
	assert.False(t, p("ab"))
	assert.False(t, p(""))
	// Runes, not bytes.
	assert.True(t, p("héé"))
}

func TestMaxLen(t *testing.T) {
	t.Parallel()

	p := validator.MaxLen(5)
	assert.True(t, p(""))
	assert.True(t, p("abcde"))
	assert.False(t, p("abcdef"))
	assert.False(t, p(strings.Repeat("x", 100)))
}

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"simple address", "user@example.com", true},
		{"subdomain", "user@mail.example.co.uk", true},
		{"plus tag", "user+tag@example.com", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"missing at", "userexample.com", false},
		{"missing domain dot", "user@localhost", false},
		{"leading dot domain", "user@.example.com", false},
		{"trailing dot domain", "user@example.com.", false},
		{"plain words", "not-an-email", false},
	}

	p := validator.Email()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, p(tt.value), "value %q", tt.value)
		})
	}
}

func TestPhone(t *testing.T) {
	t.Parallel()

	p := validator.Phone()
	assert.True(t, p("+14155551234"))
	assert.True(t, p("+1 (415) 555-1234"))
	assert.True(t, p("4155551234"))
	assert.False(t, p(""))
	assert.False(t, p("abc"))
	assert.False(t, p("0"))
	assert.False(t, p("+0 123"))
}

func TestMatchPattern(t *testing.T) {
	t.Parallel()

	p := validator.MatchPattern(regexp.MustCompile(`^[a-z]+$`))
	assert.True(t, p("abc"))
	assert.False(t, p("ABC"))
	assert.False(t, p(""))

	assert.False(t, validator.MatchPattern(nil)("anything"))
}

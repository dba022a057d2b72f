package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestChecker(t *testing.T) {
	restore := Today
	Today = func() time.Time { return date("2024-05-10") }
	t.Cleanup(func() { Today = restore })

	tests := []struct {
		name    string
		value   any
		tags    string
		message string
	}{
		{name: "blank", value: "   ", tags: "notblank", message: "Must not be blank"},
		{name: "whitespace", value: "dolore ullamco", tags: "notblank,nowhitespace", message: "Must not contain whitespace"},
		{name: "email", value: "mail.ru", tags: "notblank,email", message: "Invalid email format"},
		{name: "too long", value: string(make([]rune, 201)), tags: "max=200", message: "Maximum length is 200"},
		{name: "negative", value: -1, tags: "gte=0", message: "Must be at least 0"},
		{name: "boundary date", value: date("1895-12-28"), tags: "required,after=1895-12-28", message: "Must be after 1895-12-28"},
		{name: "zero date", value: time.Time{}, tags: "required,after=1895-12-28", message: "This field is required"},
		{name: "future", value: date("2024-05-11"), tags: "required,notfuture", message: "Must not be in the future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Checker
			c.Check("field", tt.value, tt.tags)

			violations := c.Violations()
			if assert.Len(t, violations, 1) {
				assert.Equal(t, "field", violations[0].Field)
				assert.Equal(t, tt.message, violations[0].Message)
			}
		})
	}
}

func TestChecker_Passes(t *testing.T) {
	restore := Today
	Today = func() time.Time { return date("2024-05-10") }
	t.Cleanup(func() { Today = restore })

	var c Checker
	c.Check("name", "Film", "notblank")
	c.Check("description", string(make([]rune, 200)), "max=200")
	c.Check("releaseDate", date("1895-12-29"), "required,after=1895-12-28")
	c.Check("duration", 0, "gte=0")
	c.Check("birthday", date("2024-05-10"), "required,notfuture")
	c.Check("email", "user@example.com", "notblank,email")

	assert.Nil(t, c.Violations())
}

func TestChecker_MultiByteLength(t *testing.T) {
	var c Checker
	// 200 runes, 400 bytes
	c.Check("description", strings.Repeat("ж", 200), "max=200")
	assert.Nil(t, c.Violations())
}

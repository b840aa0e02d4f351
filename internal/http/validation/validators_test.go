package validation

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	v := Required("Username", 10)

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"valid", "john", ""},
		{"empty", "", "Username is required."},
		{"whitespace only", "   ", "Username is required."},
		{"too long", strings.Repeat("a", 11), "Username cannot exceed 10 characters."},
		{"at limit", strings.Repeat("a", 10), ""},
		{"unicode counted by rune", strings.Repeat("ü", 10), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v(tt.value))
		})
	}
}

func TestRequiredRange(t *testing.T) {
	v := RequiredRange("Password", 6, 40)

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"valid", "secret1", ""},
		{"empty", "", "Password is required."},
		{"too short", "12345", "Password must be between 6 and 40 characters."},
		{"too long", strings.Repeat("x", 41), "Password must be between 6 and 40 characters."},
		{"at lower bound", "123456", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v(tt.value))
		})
	}
}

func TestEmail(t *testing.T) {
	v := Email("Email")

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"valid", "john@example.com", ""},
		{"subdomain", "john@mail.example.co.uk", ""},
		{"empty", "", "Email is required."},
		{"no at sign", "john.example.com", "Enter a valid email address."},
		{"no domain dot", "john@example", "Enter a valid email address."},
		{"embedded space", "jo hn@example.com", "Enter a valid email address."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v(tt.value))
		})
	}
}

func TestAmount(t *testing.T) {
	v := Amount("Amount")

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"valid", "100.50", ""},
		{"integer", "5", ""},
		{"empty", "", "Amount is required."},
		{"not a number", "abc", "Amount must be a number."},
		{"zero", "0", "Amount must be greater than zero."},
		{"negative", "-10", "Amount must be greater than zero."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v(tt.value))
		})
	}
}

func TestOneOf(t *testing.T) {
	v := OneOf("Account type", []string{"CHECKING", "SAVINGS"})

	assert.Empty(t, v("CHECKING"))
	assert.Empty(t, v("savings"), "matching is case-insensitive")
	assert.Equal(t, "Account type must be one of: CHECKING, SAVINGS", v("CRYPTO"))
}

func TestPattern(t *testing.T) {
	v := Pattern("Phone", regexp.MustCompile(`^\+?[0-9]{7,15}$`))

	assert.Empty(t, v(""), "empty is allowed, Pattern is for optional fields")
	assert.Empty(t, v("+15551234567"))
	assert.Equal(t, "Phone has an invalid format.", v("not-a-phone"))
}

func TestOptional(t *testing.T) {
	v := Optional("First name", 5)

	assert.Empty(t, v(""))
	assert.Empty(t, v("Anna"))
	assert.Equal(t, "First name cannot exceed 5 characters.", v("Annabelle"))
}

func TestFieldValidator(t *testing.T) {
	t.Run("collects one error per field", func(t *testing.T) {
		errs := New().
			Validate("username", "", Required("Username", 50)).
			Validate("email", "bad", Email("Email")).
			Validate("firstName", "Anna", Optional("First name", 50)).
			Errors()

		assert.Len(t, errs, 2)
		assert.Equal(t, "Username is required.", errs["username"])
		assert.Equal(t, "Enter a valid email address.", errs["email"])
	})

	t.Run("stops at first failing validator per field", func(t *testing.T) {
		errs := New().
			Validate("amount", "", Amount("Amount"), Required("Amount", 20)).
			Errors()

		assert.Equal(t, "Amount is required.", errs["amount"])
	})

	t.Run("no errors for valid input", func(t *testing.T) {
		errs := New().
			Validate("username", "john", Required("Username", 50)).
			Errors()

		assert.Empty(t, errs)
	})
}

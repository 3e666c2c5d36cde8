package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@example.co.id",
		"user+tag@sub.example.com",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
		"user @example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-03-12")
	require.True(t, ok)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, time.March, date.Month())
	assert.Equal(t, 12, date.Day())

	for _, bad := range []string{"", "12-03-2025", "2025/03/12", "2025-13-01", "2025-02-30"} {
		_, ok := IsValidDate(bad)
		assert.False(t, ok, bad)
	}
}

func TestIsValidMonth(t *testing.T) {
	month, ok := IsValidMonth("2025-03")
	require.True(t, ok)
	assert.Equal(t, time.March, month.Month())

	for _, bad := range []string{"", "2025", "03-2025", "2025-3", "2025-00", "2025-03-12"} {
		_, ok := IsValidMonth(bad)
		assert.False(t, ok, bad)
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "a valid email is required"},
		{Field: "password", Message: "password is required"},
	}

	assert.Equal(t, "email: a valid email is required; password: password is required", errs.Error())
	assert.Equal(t, map[string]string{
		"email":    "a valid email is required",
		"password": "password is required",
	}, errs.ToMap())
}

func TestIsInSlice(t *testing.T) {
	roles := []string{"employee", "manager"}
	assert.True(t, IsInSlice("manager", roles))
	assert.False(t, IsInSlice("admin", roles))
	assert.False(t, IsInSlice("manager", nil))
}

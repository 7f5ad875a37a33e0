package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsValidPhone tests the IsValidPhone function.
func TestIsValidPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		area     string
		phone    string
		expected bool
	}{
		{
			name:     "valid China number",
			area:     AreaChina,
			phone:    "13812345678",
			expected: true,
		},
		{
			name:     "China number with invalid second digit",
			area:     AreaChina,
			phone:    "12812345678",
			expected: false,
		},
		{
			name:     "China number too short",
			area:     AreaChina,
			phone:    "1381234567",
			expected: false,
		},
		{
			name:     "China number too long",
			area:     AreaChina,
			phone:    "138123456789",
			expected: false,
		},
		{
			name:     "valid Brazil number starting with 9",
			area:     AreaBrazil,
			phone:    "987654321",
			expected: true,
		},
		{
			name:     "valid Brazil number starting with 8",
			area:     AreaBrazil,
			phone:    "812345678",
			expected: true,
		},
		{
			name:     "Brazil number with invalid first digit",
			area:     AreaBrazil,
			phone:    "712345678",
			expected: false,
		},
		{
			name:     "Brazil number too long",
			area:     AreaBrazil,
			phone:    "9876543210",
			expected: false,
		},
		{
			name:     "unknown area is rejected",
			area:     "1",
			phone:    "2025550142",
			expected: false,
		},
		{
			name:     "non-digit characters",
			area:     AreaChina,
			phone:    "1381234567a",
			expected: false,
		},
		{
			name:     "empty phone",
			area:     AreaChina,
			phone:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := IsValidPhone(tt.area, tt.phone)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestIsValidEmail tests the IsValidEmail function.
func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		expected bool
	}{
		{
			name:     "plain address",
			email:    "user@example.com",
			expected: true,
		},
		{
			name:     "address with plus tag",
			email:    "user+tag@example.co",
			expected: true,
		},
		{
			name:     "missing at sign",
			email:    "user.example.com",
			expected: false,
		},
		{
			name:     "missing domain dot",
			email:    "user@example",
			expected: false,
		},
		{
			name:     "contains whitespace",
			email:    "user name@example.com",
			expected: false,
		},
		{
			name:     "empty string",
			email:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := IsValidEmail(tt.email)
			assert.Equal(t, tt.expected, result)
		})
	}
}

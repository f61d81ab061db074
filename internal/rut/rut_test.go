package rut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "123456785", Sanitize("12.345.678-5"))
	assert.Equal(t, "6K", Sanitize(" 6-k "))
	assert.Equal(t, "", Sanitize("--"))
}

func TestValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"12.345.678-5", true},
		{"123456785", true},
		{"11.111.111-1", true},
		{"6-k", true},
		{"6-K", true},
		{"76.123.456-0", true},
		{"12.345.678-4", false},
		{"76.123.456-7", false},
		{"K", false},
		{"", false},
		{"abc", false},
		{"5", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.in))
		})
	}
}

func TestCheckDigit(t *testing.T) {
	assert.Equal(t, byte('5'), CheckDigit("12345678"))
	assert.Equal(t, byte('K'), CheckDigit("6"))
	assert.Equal(t, byte('0'), CheckDigit("76123456"))
}

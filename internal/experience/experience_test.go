package experience

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"below a year", "8 months", "8 months"},
		{"exactly a year", "12 months", "1 years"},
		{"fractional years", "18 months", "1.5 years"},
		{"whole years", "24 months", "2 years"},
		{"four years", "48 months", "4 years"},
		{"rounded to one decimal", "20 months", "1.7 years"},
		{"midpoint rounds down to even", "15 months", "1.2 years"},
		{"midpoint rounds up to even", "21 months", "1.8 years"},
		{"bare number", "30", "2.5 years"},
		{"number with keyword text", "15 years of teaching", "1.2 years"},
		{"no digits returns original", "several years", "several years"},
		{"zero returns original", "0 months", "0 months"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestFormatYears(t *testing.T) {
	assert.Equal(t, "2.5 years", FormatYears(2.5))
	assert.Equal(t, "10.5 years", FormatYears(10.5))
}

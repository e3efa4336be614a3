package cli

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"12.5", "$12.50"},
		{"999.999", "$1,000.00"},
		{"1234.56", "$1,234.56"},
		{"1234567.8", "$1,234,567.80"},
		{"-42", "-$42.00"},
		{"0.004", "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "3.85%", FormatRate(decimal.RequireFromString("0.0385")))
	assert.Equal(t, "0.00%", FormatRate(decimal.Zero))
	assert.Equal(t, "3.60%", FormatRate(decimal.RequireFromString("0.036")))
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "instant", FormatDays(0))
	assert.Equal(t, "1 day", FormatDays(1))
	assert.Equal(t, "3 days", FormatDays(3))
}

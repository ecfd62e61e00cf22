package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  decimal.Decimal
		hasError  bool
	}{
		{"Simple decimal", "123.45", decimal.NewFromFloat(123.45), false},
		{"Negative decimal", "-123.45", decimal.NewFromFloat(-123.45), false},
		{"Integer", "100", decimal.NewFromInt(100), false},
		{"With thousand separator", "1,234.56", decimal.NewFromFloat(1234.56), false},
		{"With multiple thousand separators", "12,345,678.90", decimal.NewFromFloat(12345678.90), false},
		{"With spaces", "  123.45  ", decimal.NewFromFloat(123.45), false},
		{"With trailing zeros", "123.00", decimal.NewFromFloat(123), false},
		{"Empty string", "", decimal.Zero, true},
		{"Malformed decimal", "123.45.67", decimal.Zero, true},
		{"Non-numeric", "abc", decimal.Zero, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseAmount(tc.amountStr)

			if tc.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, tc.expected.Equal(result), "Expected %s but got %s", tc.expected.String(), result.String())
			}
		})
	}
}

func TestParseOptionalAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		valid    bool
		expected decimal.Decimal
	}{
		{"Valid amount", "1,250.00", true, decimal.NewFromFloat(1250.00)},
		{"Plain amount", "9.99", true, decimal.NewFromFloat(9.99)},
		{"Empty string", "", false, decimal.Zero},
		{"Whitespace only", "   ", false, decimal.Zero},
		{"Non-numeric", "POS", false, decimal.Zero},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ParseOptionalAmount(tc.input)

			assert.Equal(t, tc.valid, result.Valid)
			if tc.valid {
				assert.True(t, tc.expected.Equal(result.Decimal))
			}
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	assert.Equal(t, "1234.56", StandardizeAmount("1,234.56"))
	assert.Equal(t, "123.45", StandardizeAmount("  123.45  "))
	assert.Equal(t, "", StandardizeAmount("   "))
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"Small amount", decimal.NewFromFloat(5.5), "5.50"},
		{"Hundreds", decimal.NewFromFloat(123.45), "123.45"},
		{"Thousands", decimal.NewFromFloat(1234.56), "1,234.56"},
		{"Millions", decimal.NewFromFloat(12345678.90), "12,345,678.90"},
		{"Exactly one thousand", decimal.NewFromInt(1000), "1,000.00"},
		{"Negative thousands", decimal.NewFromFloat(-1234.56), "-1,234.56"},
		{"Zero", decimal.Zero, "0.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAmount(tc.amount))
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	amounts := []decimal.Decimal{
		decimal.NewFromFloat(0.01),
		decimal.NewFromFloat(999.99),
		decimal.NewFromFloat(1000000.00),
		decimal.NewFromFloat(-42.00),
	}

	for _, amount := range amounts {
		formatted := FormatAmount(amount)
		parsed, err := ParseAmount(formatted)
		assert.NoError(t, err)
		assert.True(t, amount.Equal(parsed), "round trip changed %s to %s", amount, parsed)
	}
}

func TestIsNegativeAndIsZero(t *testing.T) {
	assert.True(t, IsNegative(decimal.NewFromFloat(-1.00)))
	assert.False(t, IsNegative(decimal.NewFromFloat(1.00)))
	assert.True(t, IsZero(decimal.Zero))
	assert.False(t, IsZero(decimal.NewFromFloat(0.01)))
}

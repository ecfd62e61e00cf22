// Package currencyutils provides the decimal amount parsing and formatting
// used throughout the application. Statement amounts arrive as text with
// thousands separators and exactly two decimal places ("1,234.56").
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a statement amount string into a decimal value.
// Thousands separators are stripped before parsing.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// ParseOptionalAmount parses an amount string that may not be numeric at
// all. Parse failure is not an error here: the result is simply absent.
// Downstream code must check Valid rather than relying on a zero value.
func ParseOptionalAmount(amountStr string) decimal.NullDecimal {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.NullDecimal{}
	}
	amount, err := ParseAmount(amountStr)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: amount, Valid: true}
}

// StandardizeAmount strips thousands separators and surrounding whitespace
// so the result can be handed to decimal.NewFromString.
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)
	amountStr = strings.ReplaceAll(amountStr, ",", "")
	return amountStr
}

// FormatAmount renders a decimal in the statement's own notation:
// comma-separated thousands and exactly two decimal places. Parsing the
// result with ParseAmount yields the original value.
func FormatAmount(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteString(fracPart)

	return b.String()
}

// IsNegative checks if an amount is negative.
func IsNegative(amount decimal.Decimal) bool {
	return amount.LessThan(decimal.Zero)
}

// IsZero checks if an amount is zero.
func IsZero(amount decimal.Decimal) bool {
	return amount.Equal(decimal.Zero)
}

// Package textmatch classifies raw token text against the fixed lexical
// patterns of a statement layout. Everything here is a pure predicate or
// extraction function; no state is kept between calls.
package textmatch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nickymouseeeeeee/bankstatement/internal/currencyutils"
)

// Matcher bundles the compiled patterns of one statement layout.
type Matcher struct {
	date  *regexp.Regexp
	time  *regexp.Regexp
	money *regexp.Regexp
}

// NewMatcher builds a Matcher from the layout's compiled patterns.
func NewMatcher(date, timePattern, money *regexp.Regexp) Matcher {
	return Matcher{date: date, time: timePattern, money: money}
}

// IsDate reports whether the text is a transaction date (dd/mm/yy).
func (m Matcher) IsDate(text string) bool {
	return m.date.MatchString(text)
}

// IsTime reports whether the text is a transaction time (hh:mm).
func (m Matcher) IsTime(text string) bool {
	return m.time.MatchString(text)
}

// IsMoney reports whether the text is a monetary amount with two decimal
// places and optional thousands separators.
func (m Matcher) IsMoney(text string) bool {
	return m.money.MatchString(text)
}

// ParseMoney converts money-pattern text to a decimal amount. Text that
// does not match the money pattern yields an absent value, never an error.
func (m Matcher) ParseMoney(text string) decimal.NullDecimal {
	if !m.IsMoney(text) {
		return decimal.NullDecimal{}
	}
	return currencyutils.ParseOptionalAmount(text)
}

// ContainsAnyKeyword reports whether text contains any of the keywords,
// case-insensitively.
func ContainsAnyKeyword(text string, keywords []string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// PageID extracts a "N/M" page identifier from free page text using the
// layout's page-id pattern (two capture groups). Returns the empty string
// when the pattern does not occur.
func PageID(pattern *regexp.Regexp, text string) string {
	match := pattern.FindStringSubmatch(text)
	if len(match) < 3 {
		return ""
	}
	return fmt.Sprintf("%s/%s", match[1], match[2])
}

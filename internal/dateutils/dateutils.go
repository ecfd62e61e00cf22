// Package dateutils provides the date parsing used for statement fields.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts appearing in SCB-family statements.
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutStatement = "02/01/06"   // transaction rows, day-first two-digit year
	DateLayoutPeriod    = "02/01/2006" // statement period bounds
)

var periodSeparator = regexp.MustCompile(`[-–]`)

// ParseStatementDate parses a transaction date in the statement's day-first,
// two-digit-year notation. Two-digit years resolve via Go's standard pivot
// (69 and below map to 20xx).
func ParseStatementDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	t, err := time.Parse(DateLayoutStatement, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse statement date %q: %w", dateStr, err)
	}
	return t, nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD). A zero
// time renders as the empty string so absent dates stay absent in output.
func ToISODate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutISO)
}

// SplitPeriod splits a statement period string ("01/01/2023 - 31/01/2023")
// into its start and end dates, parsed day-first. Either bound may come back
// zero when missing or unparseable; a malformed period is not an error.
func SplitPeriod(period string) (start, end time.Time) {
	period = strings.ReplaceAll(period, " ", "")
	if period == "" {
		return time.Time{}, time.Time{}
	}

	parts := periodSeparator.Split(period, 2)
	start = parsePeriodBound(parts[0])
	if len(parts) > 1 {
		end = parsePeriodBound(parts[1])
	}
	return start, end
}

func parsePeriodBound(s string) time.Time {
	for _, layout := range []string{DateLayoutPeriod, DateLayoutStatement} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

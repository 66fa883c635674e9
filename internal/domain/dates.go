package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDateRange validates a date-range filter of the form
// "YYYY-MM-DD,YYYY-MM-DD" and returns its two bounds.
func ParseDateRange(dates string) (time.Time, time.Time, error) {
	parts := strings.Split(dates, ",")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, NewValidationErr(
			fmt.Sprintf("dates must be a range in format YYYY-MM-DD,YYYY-MM-DD, got %q", dates),
		)
	}

	from, err := parseDateOnly(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDateOnly(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

func parseDateOnly(value string) (time.Time, error) {
	t, err := dateparse.ParseStrict(value)
	if err != nil || t.Format(time.DateOnly) != value {
		return time.Time{}, NewValidationErr(
			fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value),
		)
	}
	return t, nil
}

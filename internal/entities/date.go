package entities

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical ISO calendar date layout used in storage.
const DateLayout = "2006-01-02"

// LongDateLayout renders dates as "Mon Jan 02 2006".
const LongDateLayout = "Mon Jan 02 2006"

// Epoch is the earliest date a log query can start from.
var Epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts an ISO date, an RFC 3339 timestamp or the long form and returns
// the calendar date as written. The offset of a timestamp does not shift the day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DateLayout, time.RFC3339Nano, LongDateLayout} {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrInvalidArgument, s)
}

// FormatDate renders a calendar date in canonical ISO form.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

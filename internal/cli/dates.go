package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dayLayout is the calendar form accepted for expiration and query days.
const dayLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// now is replaced in tests.
var now = time.Now

// parseDay converts a YYYY-MM-DD date or a plain day ordinal into the number
// of days since 1970-01-01.
func parseDay(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q (want YYYY-MM-DD or a day number)", s)
	}
	return dayOf(t), nil
}

// dayOf returns the UTC day ordinal of t.
func dayOf(t time.Time) int {
	secs := t.UTC().Unix()
	day := secs / secondsPerDay
	if secs%secondsPerDay < 0 {
		day--
	}
	return int(day)
}

// formatDay renders a day ordinal as a calendar date.
func formatDay(day int) string {
	return time.Unix(int64(day)*secondsPerDay, 0).UTC().Format(dayLayout)
}

func today() int {
	return dayOf(now())
}

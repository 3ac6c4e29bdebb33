// Package calendar holds the date arithmetic shared by admission, pricing and
// the ledger. All dates are calendar days normalized to UTC midnight.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the wire and storage format, mm-dd-yyyy.
	DateLayout = "01-02-2006"

	// parseLayout accepts both padded and non-padded month and day.
	parseLayout = "1-2-2006"

	day = 24 * time.Hour
)

var ErrInvalidDate = errors.New("calendar: invalid date")

// WeekKey identifies an ISO 8601 calendar week.
type WeekKey struct {
	Year int
	Week int
}

// ParseDate parses mm-dd-yyyy (non-padded month and day accepted).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(parseLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, expected mm-dd-yyyy", ErrInvalidDate, s)
	}
	return Truncate(t), nil
}

// FormatDate renders a date as mm-dd-yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Truncate drops the time of day and moves the date to UTC, keeping the
// calendar day as seen in t's own location.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ExpandDays returns every calendar day from start to end inclusive.
// An end before start yields an empty list.
func ExpandDays(start, end time.Time) []time.Time {
	start, end = Truncate(start), Truncate(end)
	if end.Before(start) {
		return nil
	}

	days := make([]time.Time, 0, DaysBetween(start, end)+1)
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		days = append(days, cur)
	}
	return days
}

// DaysBetween returns the signed number of whole days from `from` to `to`.
func DaysBetween(from, to time.Time) int {
	return int(Truncate(to).Sub(Truncate(from)) / day)
}

// Between reports whether d lies within [from, to] inclusive.
func Between(d, from, to time.Time) bool {
	d = Truncate(d)
	return !d.Before(Truncate(from)) && !d.After(Truncate(to))
}

// WeekOf returns the ISO year and week number of d.
func WeekOf(d time.Time) WeekKey {
	y, w := d.ISOWeek()
	return WeekKey{Year: y, Week: w}
}

func (k WeekKey) String() string {
	return fmt.Sprintf("%d-W%02d", k.Year, k.Week)
}

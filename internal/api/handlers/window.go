package handlers

import (
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
)

// DefaultWindowDays длина окна отчета, если конец периода не задан
const DefaultWindowDays = 7

// ParseDateWindow читает start_date и end_date из query.
// Без start_date окно равно [сегодня, сегодня+7], end_date при этом игнорируется;
// без end_date окно равно [start_date, start_date+7].
func ParseDateWindow(q url.Values, now time.Time) (from, to time.Time, err error) {
	startRaw, endRaw := q.Get("start_date"), q.Get("end_date")

	if startRaw != "" {
		if from, err = calendar.ParseDate(startRaw); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("start_date: %w", err)
		}
	}
	if endRaw != "" {
		if to, err = calendar.ParseDate(endRaw); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("end_date: %w", err)
		}
	}

	switch {
	case startRaw == "":
		from = calendar.Truncate(now)
		to = from.AddDate(0, 0, DefaultWindowDays)
	case endRaw == "":
		to = from.AddDate(0, 0, DefaultWindowDays)
	}
	return from, to, nil
}

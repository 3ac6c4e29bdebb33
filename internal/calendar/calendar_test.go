package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("04-26-2022")
	require.NoError(t, err)
	assert.Equal(t, date(2022, time.April, 26), got)

	got, err = ParseDate("4-6-2022")
	require.NoError(t, err)
	assert.Equal(t, date(2022, time.April, 6), got)

	_, err = ParseDate("2022-04-26")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("13-01-2022")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "04-06-2022", FormatDate(date(2022, time.April, 6)))
}

func TestExpandDays(t *testing.T) {
	days := ExpandDays(date(2022, time.April, 29), date(2022, time.May, 2))
	require.Len(t, days, 4)
	assert.Equal(t, date(2022, time.April, 29), days[0])
	assert.Equal(t, date(2022, time.May, 2), days[3])

	assert.Len(t, ExpandDays(date(2022, time.May, 2), date(2022, time.May, 2)), 1)
	assert.Empty(t, ExpandDays(date(2022, time.May, 3), date(2022, time.May, 2)))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 10, DaysBetween(date(2022, time.May, 1), date(2022, time.May, 11)))
	assert.Equal(t, -1, DaysBetween(date(2022, time.May, 2), date(2022, time.May, 1)))
	// across the March DST switch in a zone with daylight saving
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err == nil {
		from := time.Date(2022, time.March, 12, 23, 0, 0, 0, loc)
		to := time.Date(2022, time.March, 14, 1, 0, 0, 0, loc)
		assert.Equal(t, 2, DaysBetween(from, to))
	}
}

func TestBetween(t *testing.T) {
	from, to := date(2022, time.May, 1), date(2022, time.May, 7)
	assert.True(t, Between(from, from, to))
	assert.True(t, Between(to, from, to))
	assert.False(t, Between(date(2022, time.May, 8), from, to))
}

func TestWeekOf(t *testing.T) {
	// 2021-01-03 is a Sunday that belongs to ISO week 53 of 2020
	assert.Equal(t, WeekKey{Year: 2020, Week: 53}, WeekOf(date(2021, time.January, 3)))
	assert.Equal(t, WeekKey{Year: 2021, Week: 1}, WeekOf(date(2021, time.January, 4)))
	assert.Equal(t, "2021-W01", WeekOf(date(2021, time.January, 4)).String())
}

package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
)

// validateDate проверяет, что дата не в прошлом и не дальше горизонта
func validateDate(date, now time.Time, horizonDays int) error {
	gap := calendar.DaysBetween(now, date)
	if gap < 0 {
		return ErrInvalidDate
	}
	if gap > horizonDays {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, horizonDays)
	}
	return nil
}

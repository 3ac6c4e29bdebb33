package admission

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// dayIndex groups existing reservations by the candidate's covered days.
// Within a day the store order is kept, so scans see reservations in the
// same order as a full pass over the store would.
type dayIndex struct {
	first time.Time
	days  [][]*domain.Reservation
}

func newDayIndex(days []time.Time, existing []domain.Reservation) *dayIndex {
	idx := &dayIndex{days: make([][]*domain.Reservation, len(days))}
	if len(days) == 0 {
		return idx
	}
	idx.first = days[0]
	last := days[len(days)-1]

	for i := range existing {
		r := &existing[i]
		from, to := r.StartDate, r.EndDate
		if from.Before(idx.first) {
			from = idx.first
		}
		if to.After(last) {
			to = last
		}
		for d := calendar.DaysBetween(idx.first, from); d <= calendar.DaysBetween(idx.first, to); d++ {
			idx.days[d] = append(idx.days[d], r)
		}
	}
	return idx
}

// on returns the reservations covering the i-th candidate day
func (idx *dayIndex) on(i int) []*domain.Reservation {
	return idx.days[i]
}

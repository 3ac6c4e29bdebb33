package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// ResourceKind identifies one of the bookable resources
type ResourceKind string

const (
	KindWorkshop   ResourceKind = "workshop"
	KindMicrovac   ResourceKind = "microvac"
	KindIrradiator ResourceKind = "irradiator"
	KindExtruder   ResourceKind = "extruder"
	KindCrusher    ResourceKind = "high-velocity-crusher"
	KindHarvester  ResourceKind = "harvester"
)

// crusherAlias is the short name older clients and data files use
const crusherAlias = "hvc"

// AllKinds lists the resource kinds in catalog order
var AllKinds = []ResourceKind{
	KindWorkshop,
	KindMicrovac,
	KindIrradiator,
	KindExtruder,
	KindCrusher,
	KindHarvester,
}

// ParseResourceKind normalizes a kind name, accepting the legacy "hvc" alias.
// The second result is false when the name is not a known kind.
func ParseResourceKind(s string) (ResourceKind, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == crusherAlias {
		return KindCrusher, true
	}
	for _, k := range AllKinds {
		if string(k) == name {
			return k, true
		}
	}
	return ResourceKind(s), false
}

// IsKnown returns true for one of the six catalog kinds
func (k ResourceKind) IsKnown() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// IsSpecial returns true for every machine, i.e. everything except the workshop
func (k ResourceKind) IsSpecial() bool {
	return k != KindWorkshop
}

// Reservation represents an admitted booking of one resource.
// A reservation covers the same [StartTime, EndTime) window on every day
// from StartDate to EndDate inclusive. It is never mutated after creation.
type Reservation struct {
	ID         int64
	CustomerID string
	Kind       ResourceKind

	StartDate time.Time // UTC midnight
	EndDate   time.Time // UTC midnight, inclusive
	StartTime types.TimeString
	EndTime   types.TimeString

	CreatedOn time.Time // date the booking was requested

	TotalCost       float64
	DownPayment     float64
	DiscountPercent int
}

// Days returns every calendar day the reservation covers
func (r *Reservation) Days() []time.Time {
	return calendar.ExpandDays(r.StartDate, r.EndDate)
}

// CoversDay returns true if the reservation is active on the given day
func (r *Reservation) CoversDay(day time.Time) bool {
	return calendar.Between(day, r.StartDate, r.EndDate)
}

// StartUnits returns the start time in half-hour units (see types.TimeString.Units)
func (r *Reservation) StartUnits() int {
	return r.StartTime.Units()
}

// EndUnits returns the end time in half-hour units
func (r *Reservation) EndUnits() int {
	return r.EndTime.Units()
}

// ActiveAt returns true if the time unit t falls within [start, end)
func (r *Reservation) ActiveAt(t int) bool {
	return r.StartUnits() <= t && t < r.EndUnits()
}

// OverlapsUnits returns true if [start, end) intersects the reservation's window
func (r *Reservation) OverlapsUnits(start, end int) bool {
	return !(end <= r.StartUnits() || r.EndUnits() <= start)
}

// HalfHours returns the number of 30-minute blocks booked per day
func (r *Reservation) HalfHours() int {
	return halfHours(r.StartTime, r.EndTime)
}

// DayCount returns the number of calendar days covered
func (r *Reservation) DayCount() int {
	return calendar.DaysBetween(r.StartDate, r.EndDate) + 1
}

// ReservationsFilter фильтр для отчета по бронированиям
type ReservationsFilter struct {
	From       time.Time // Начало периода по дате начала бронирования (включительно)
	To         time.Time // Конец периода (включительно)
	CustomerID *string   // Фильтр по клиенту (опционально)
}

// Match returns true if the reservation passes the filter
func (f ReservationsFilter) Match(r *Reservation) bool {
	if f.CustomerID != nil && r.CustomerID != *f.CustomerID {
		return false
	}
	return calendar.Between(r.StartDate, f.From, f.To)
}

func halfHours(start, end types.TimeString) int {
	n := (end.Hour() - start.Hour()) * 2
	n += end.Minute()/30 - start.Minute()/30
	return n
}

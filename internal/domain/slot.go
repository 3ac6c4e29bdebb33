package domain

import "github.com/m04kA/SMC-FacilityBooking/pkg/types"

// AvailableSlot represents one 30-minute slot of a resource on a given day
type AvailableSlot struct {
	StartTime      types.TimeString
	EndTime        types.TimeString
	AvailableUnits int // machines (or workshop seats) still free
	TotalUnits     int // capacity of the resource
}

// IsFull returns true if the slot has no free units
func (s *AvailableSlot) IsFull() bool {
	return s.AvailableUnits <= 0
}

// IsFullyAvailable returns true if nothing is booked in the slot
func (s *AvailableSlot) IsFullyAvailable() bool {
	return s.AvailableUnits == s.TotalUnits
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *AvailableSlot) OccupancyRate() float64 {
	if s.TotalUnits == 0 {
		return 0
	}
	occupied := s.TotalUnits - s.AvailableUnits
	return float64(occupied) / float64(s.TotalUnits) * 100
}

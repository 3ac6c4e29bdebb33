package get_available_slots

import (
	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
	getAvailableSlots "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date     string          `json:"date"`
	Resource string          `json:"resource"`
	Open     bool            `json:"open"`
	Slots    []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	AvailableUnits int     `json:"available_units"`
	TotalUnits     int     `json:"total_units"`
	OccupancyRate  float64 `json:"occupancy_rate"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i := range resp.Slots {
		s := &resp.Slots[i]
		slots[i] = AvailableSlot{
			StartTime:      s.StartTime.String(),
			EndTime:        s.EndTime.String(),
			AvailableUnits: s.AvailableUnits,
			TotalUnits:     s.TotalUnits,
			OccupancyRate:  s.OccupancyRate(),
		}
	}

	return &AvailableSlotsResponse{
		Date:     calendar.FormatDate(resp.Date),
		Resource: string(resp.Resource),
		Open:     resp.Open,
		Slots:    slots,
	}
}

package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// generateTimeSlots нарезает окно работы на получасовые слоты
func generateTimeSlots(window domain.DayWindow) ([]types.TimeString, error) {
	if window.IsClosed() {
		return []types.TimeString{}, nil
	}

	slots := make([]types.TimeString, 0)
	current := window.Open
	for current.IsBefore(window.Close) {
		next, err := current.AddMinutes(domain.SlotMinutes)
		if err != nil {
			return nil, err
		}
		if next.IsAfter(window.Close) {
			break
		}
		slots = append(slots, current)
		current = next
	}
	return slots, nil
}

// calculateAvailableUnits считает свободные единицы ресурса в каждом слоте.
// Учитываются правила, не зависящие от клиента: вместимость, единственный
// облучатель и потолок машин при работающем harvester. Кулдауны и квоты
// проверяются при бронировании.
func calculateAvailableUnits(
	slots []types.TimeString,
	resource domain.Resource,
	rules domain.Rules,
	day time.Time,
	reservations []domain.Reservation,
) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, len(slots))

	for i, start := range slots {
		occ := occupancyAt(start.Units(), resource.Kind, day, reservations)

		available := resource.Capacity - occ.sameKind
		if resource.Kind == domain.KindIrradiator && occ.sameKind > 0 {
			available = 0
		}
		if resource.Kind.IsSpecial() && occ.harvesterActive {
			available = min(available, rules.HarvesterConcurrency-occ.machines)
		}
		if available < 0 {
			available = 0
		}

		end, _ := start.AddMinutes(domain.SlotMinutes)
		result[i] = domain.AvailableSlot{
			StartTime:      start,
			EndTime:        end,
			AvailableUnits: available,
			TotalUnits:     resource.Capacity,
		}
	}

	return result
}

// occupancy занятость одной единицы времени
type occupancy struct {
	sameKind        int
	machines        int
	harvesterActive bool
}

// occupancyAt подсчитывает бронирования, активные в единицу времени t.
// Бронирование, закончившееся ровно в начале слота, слот не занимает.
func occupancyAt(t int, kind domain.ResourceKind, day time.Time, reservations []domain.Reservation) occupancy {
	occ := occupancy{harvesterActive: kind == domain.KindHarvester}
	for i := range reservations {
		r := &reservations[i]
		if !r.CoversDay(day) || !r.ActiveAt(t) {
			continue
		}
		if r.Kind == kind {
			occ.sameKind++
		}
		if r.Kind.IsSpecial() {
			occ.machines++
		}
		if r.Kind == domain.KindHarvester {
			occ.harvesterActive = true
		}
	}
	return occ
}

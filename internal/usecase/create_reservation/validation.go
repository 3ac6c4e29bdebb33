package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// buildReservation валидирует запрос и собирает бронирование-кандидат.
// Неизвестный ресурс не считается ошибкой ввода: его отклоняет контроль допуска.
func buildReservation(req *Request, now time.Time) (*domain.Reservation, error) {
	customerID := strings.TrimSpace(req.CustomerID)
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrInvalidInput)
	}
	if strings.ContainsAny(customerID, " \t\r\n") {
		return nil, fmt.Errorf("%w: customer id must not contain whitespace", ErrInvalidInput)
	}

	kind, _ := domain.ParseResourceKind(req.Resource)

	startDate, err := calendar.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date: %v", ErrInvalidInput, err)
	}
	endDate := startDate
	if req.EndDate != nil && strings.TrimSpace(*req.EndDate) != "" {
		endDate, err = calendar.ParseDate(*req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end date: %v", ErrInvalidInput, err)
		}
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	var endTime types.TimeString
	if req.EndTime != nil && strings.TrimSpace(*req.EndTime) != "" {
		endTime, err = types.NewTimeStringFromString(*req.EndTime)
	} else {
		endTime, err = startTime.AddMinutes(domain.SlotMinutes)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}

	return &domain.Reservation{
		CustomerID: customerID,
		Kind:       kind,
		StartDate:  startDate,
		EndDate:    endDate,
		StartTime:  startTime,
		EndTime:    endTime,
		CreatedOn:  calendar.Truncate(now),
	}, nil
}

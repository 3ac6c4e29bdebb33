package cancel_reservation

import (
	cancelReservation "github.com/m04kA/SMC-FacilityBooking/internal/usecase/cancel_reservation"
)

// CancellationResponse HTTP response model
type CancellationResponse struct {
	ReservationID   int64   `json:"reservation_id"`
	PercentReturned int     `json:"percent_returned"`
	RefundAmount    float64 `json:"refund_amount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *CancellationResponse {
	return &CancellationResponse{
		ReservationID:   resp.ReservationID,
		PercentReturned: resp.PercentReturned,
		RefundAmount:    resp.RefundAmount,
	}
}

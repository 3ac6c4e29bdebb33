package create_reservation

import (
	createReservation "github.com/m04kA/SMC-FacilityBooking/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CustomerID string  `json:"customer_id" validate:"required"`
	Resource   string  `json:"resource" validate:"required"`
	StartDate  string  `json:"start_date" validate:"required"` // "05-02-2022"
	EndDate    *string `json:"end_date,omitempty"`
	StartTime  string  `json:"start_time" validate:"required"` // "10:00"
	EndTime    *string `json:"end_time,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ReservationID   int64   `json:"reservation_id"`
	DiscountPercent int     `json:"discount_percent"`
	TotalCost       float64 `json:"total_cost"`
	DownPayment     float64 `json:"down_payment"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		CustomerID: r.CustomerID,
		Resource:   r.Resource,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ReservationID:   resp.ReservationID,
		DiscountPercent: resp.DiscountPercent,
		TotalCost:       resp.TotalCost,
		DownPayment:     resp.DownPayment,
	}
}

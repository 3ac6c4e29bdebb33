package models

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Request модели

// ListReservationsRequest запрос отчета по бронированиям
type ListReservationsRequest struct {
	From       time.Time // Начало периода по дате начала (включительно)
	To         time.Time // Конец периода (включительно)
	CustomerID *string   // Фильтр по клиенту (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() domain.ReservationsFilter {
	return domain.ReservationsFilter{
		From:       r.From,
		To:         r.To,
		CustomerID: r.CustomerID,
	}
}

// ListTransactionsRequest запрос финансового отчета
type ListTransactionsRequest struct {
	From time.Time
	To   time.Time
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListTransactionsRequest) ToDomainFilter() domain.TransactionsFilter {
	return domain.TransactionsFilter{
		From: r.From,
		To:   r.To,
	}
}

// Response модели

// ReservationResponse строка отчета по бронированиям
type ReservationResponse struct {
	ReservationID   int64   `json:"reservation_id"`
	CustomerID      string  `json:"customer_id"`
	Resource        string  `json:"resource"`
	StartDate       string  `json:"start_date"` // "05-02-2022"
	EndDate         string  `json:"end_date"`
	StartTime       string  `json:"start_time"` // "09:00"
	EndTime         string  `json:"end_time"`
	CreatedOn       string  `json:"created_on"`
	TotalCost       float64 `json:"total_cost"`
	DownPayment     float64 `json:"down_payment"`
	DiscountPercent int     `json:"discount_percent"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// TransactionResponse строка финансового отчета
type TransactionResponse struct {
	TransactionID     int64   `json:"transaction_id"`
	TransactionType   string  `json:"transaction_type"`
	TransactionDate   string  `json:"transaction_date"`
	ReservationID     int64   `json:"reservation_id"`
	CustomerID        string  `json:"customer_id"`
	Resource          string  `json:"resource"`
	TotalCost         float64 `json:"total_cost"`
	TransactionAmount float64 `json:"transaction_amount"` // предоплата или возврат
}

// TransactionListResponse ответ со списком транзакций
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ReservationID:   r.ID,
		CustomerID:      r.CustomerID,
		Resource:        string(r.Kind),
		StartDate:       calendar.FormatDate(r.StartDate),
		EndDate:         calendar.FormatDate(r.EndDate),
		StartTime:       r.StartTime.String(),
		EndTime:         r.EndTime.String(),
		CreatedOn:       calendar.FormatDate(r.CreatedOn),
		TotalCost:       r.TotalCost,
		DownPayment:     r.DownPayment,
		DiscountPercent: r.DiscountPercent,
	}
}

// FromDomainReservationList конвертирует список; пустой список не nil
func FromDomainReservationList(rs []domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(rs)),
	}
	for i := range rs {
		resp.Reservations[i] = FromDomainReservation(&rs[i])
	}
	return resp
}

// FromDomainTransaction конвертирует domain модель в DTO
func FromDomainTransaction(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:     t.ID,
		TransactionType:   string(t.Type),
		TransactionDate:   calendar.FormatDate(t.Date),
		ReservationID:     t.Reservation.ID,
		CustomerID:        t.Reservation.CustomerID,
		Resource:          string(t.Reservation.Kind),
		TotalCost:         t.Reservation.TotalCost,
		TransactionAmount: t.Amount,
	}
}

// FromDomainTransactionList конвертирует список; пустой список не nil
func FromDomainTransactionList(ts []domain.Transaction) *TransactionListResponse {
	resp := &TransactionListResponse{
		Transactions: make([]TransactionResponse, len(ts)),
	}
	for i := range ts {
		resp.Transactions[i] = FromDomainTransaction(&ts[i])
	}
	return resp
}

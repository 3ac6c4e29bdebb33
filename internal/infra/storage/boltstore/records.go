package boltstore

import (
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

type reservationRecord struct {
	ID              int64   `json:"id"`
	CustomerID      string  `json:"customer_id"`
	Resource        string  `json:"resource"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	CreatedOn       string  `json:"created_on"`
	TotalCost       float64 `json:"total_cost"`
	DownPayment     float64 `json:"down_payment"`
	DiscountPercent int     `json:"discount_percent"`
}

type transactionRecord struct {
	ID          int64             `json:"id"`
	Type        string            `json:"type"`
	Date        string            `json:"date"`
	Amount      float64           `json:"amount"`
	Reservation reservationRecord `json:"reservation"`
}

func toReservationRecord(r *domain.Reservation) reservationRecord {
	return reservationRecord{
		ID:              r.ID,
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

func (rec reservationRecord) toDomain() (domain.Reservation, error) {
	kind, ok := domain.ParseResourceKind(rec.Resource)
	if !ok {
		return domain.Reservation{}, fmt.Errorf("%w: resource %q", ErrInvalidRecord, rec.Resource)
	}
	startDate, err := calendar.ParseDate(rec.StartDate)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	endDate, err := calendar.ParseDate(rec.EndDate)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	createdOn, err := calendar.ParseDate(rec.CreatedOn)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	startTime, err := types.NewTimeStringFromString(rec.StartTime)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: start time %q", ErrInvalidRecord, rec.StartTime)
	}
	endTime, err := types.NewTimeStringFromString(rec.EndTime)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: end time %q", ErrInvalidRecord, rec.EndTime)
	}

	return domain.Reservation{
		ID:              rec.ID,
		CustomerID:      rec.CustomerID,
		Kind:            kind,
		StartDate:       startDate,
		EndDate:         endDate,
		StartTime:       startTime,
		EndTime:         endTime,
		CreatedOn:       createdOn,
		TotalCost:       rec.TotalCost,
		DownPayment:     rec.DownPayment,
		DiscountPercent: rec.DiscountPercent,
	}, nil
}

func toTransactionRecord(t *domain.Transaction) transactionRecord {
	return transactionRecord{
		ID:          t.ID,
		Type:        string(t.Type),
		Date:        calendar.FormatDate(t.Date),
		Amount:      t.Amount,
		Reservation: toReservationRecord(&t.Reservation),
	}
}

func (rec transactionRecord) toDomain() (domain.Transaction, error) {
	date, err := calendar.ParseDate(rec.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	snapshot, err := rec.Reservation.toDomain()
	if err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		ID:          rec.ID,
		Type:        domain.TransactionType(rec.Type),
		Date:        date,
		Reservation: snapshot,
		Amount:      rec.Amount,
	}, nil
}

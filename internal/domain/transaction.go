package domain

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
)

// TransactionType is the kind of ledger entry
type TransactionType string

const (
	TransactionReservation  TransactionType = "RESERVATION"
	TransactionCancellation TransactionType = "CANCELLATION"
)

// Transaction is an append-only ledger entry. Reservation is a snapshot
// taken at the time of the transaction, so it survives cancellation.
type Transaction struct {
	ID          int64
	Type        TransactionType
	Date        time.Time
	Reservation Reservation

	// Amount is the down payment collected for a booking and the realized
	// refund for a cancellation.
	Amount float64
}

// IsCancellation returns true for refund entries
func (t *Transaction) IsCancellation() bool {
	return t.Type == TransactionCancellation
}

// TransactionsFilter фильтр для финансового отчета
type TransactionsFilter struct {
	From time.Time // Начало периода по дате транзакции (включительно)
	To   time.Time // Конец периода (включительно)
}

// Match returns true if the transaction date is within the filter window
func (f TransactionsFilter) Match(t *Transaction) bool {
	return calendar.Between(t.Date, f.From, f.To)
}

package reports

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListByFilter(ctx context.Context, filter domain.ReservationsFilter) ([]domain.Reservation, error)
}

// TransactionRepository интерфейс журнала транзакций
type TransactionRepository interface {
	ListByFilter(ctx context.Context, filter domain.TransactionsFilter) ([]domain.Transaction, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

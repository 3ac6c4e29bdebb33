package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/pricing"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context) ([]domain.Reservation, error)
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// AdmissionController проверяет бронирование по правилам допуска
type AdmissionController interface {
	Admit(res *domain.Reservation, existing []domain.Reservation) error
}

// PricingEngine рассчитывает стоимость бронирования
type PricingEngine interface {
	Quote(res *domain.Reservation) (pricing.Quote, error)
}

// Ledger журнал финансовых транзакций
type Ledger interface {
	RecordBooking(ctx context.Context, res *domain.Reservation, date time.Time) (*domain.Transaction, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики бронирований
type Metrics interface {
	ReservationCreated(resource string, downPayment float64)
	ReservationRejected(rule string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

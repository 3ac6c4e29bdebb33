package cancel_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/ledger"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Delete(ctx context.Context, id int64) (*domain.Reservation, error)
}

// Ledger журнал финансовых транзакций
type Ledger interface {
	RecordCancellation(ctx context.Context, res *domain.Reservation, cancelDate time.Time) (*ledger.Refund, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики отмен
type Metrics interface {
	ReservationCancelled(percent string, refund float64)
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

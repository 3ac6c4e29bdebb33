package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Refund результат отмены
type Refund struct {
	Percent     int
	Amount      float64
	Transaction *domain.Transaction
}

// Service записывает финансовые события бронирований.
// Методы вызываются внутри сериализуемой транзакции вместе с изменением хранилища.
type Service struct {
	transactions TransactionRepository
	policy       RefundPolicy
	logger       Logger
}

// NewService создает новый экземпляр сервиса журнала
func NewService(transactions TransactionRepository, policy RefundPolicy, logger Logger) *Service {
	return &Service{
		transactions: transactions,
		policy:       policy,
		logger:       logger,
	}
}

// RecordBooking добавляет транзакцию бронирования на сумму предоплаты
func (s *Service) RecordBooking(ctx context.Context, r *domain.Reservation, date time.Time) (*domain.Transaction, error) {
	t, err := s.transactions.Append(ctx, &domain.Transaction{
		Type:        domain.TransactionReservation,
		Date:        calendar.Truncate(date),
		Reservation: *r,
		Amount:      r.DownPayment,
	})
	if err != nil {
		s.logger.Error("RecordBooking: failed to append transaction for reservation id=%d: %v", r.ID, err)
		return nil, fmt.Errorf("%w: RecordBooking: %v", ErrInternal, err)
	}

	s.logger.Info("RecordBooking: transaction id=%d for reservation id=%d, amount=%.2f", t.ID, r.ID, t.Amount)
	return t, nil
}

// RecordCancellation вычисляет возврат и добавляет транзакцию отмены
// со снимком удаленного бронирования
func (s *Service) RecordCancellation(ctx context.Context, r *domain.Reservation, cancelDate time.Time) (*Refund, error) {
	percent, amount := s.policy.Refund(r, cancelDate)

	t, err := s.transactions.Append(ctx, &domain.Transaction{
		Type:        domain.TransactionCancellation,
		Date:        calendar.Truncate(cancelDate),
		Reservation: *r,
		Amount:      amount,
	})
	if err != nil {
		s.logger.Error("RecordCancellation: failed to append transaction for reservation id=%d: %v", r.ID, err)
		return nil, fmt.Errorf("%w: RecordCancellation: %v", ErrInternal, err)
	}

	s.logger.Info("RecordCancellation: transaction id=%d for reservation id=%d, refund %d%% = %.2f",
		t.ID, r.ID, percent, amount)
	return &Refund{
		Percent:     percent,
		Amount:      amount,
		Transaction: t,
	}, nil
}

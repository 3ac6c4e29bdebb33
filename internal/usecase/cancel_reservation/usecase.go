package cancel_reservation

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	reservationRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/ledger"
)

// UseCase use case для отмены бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	ledger          Ledger
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	ledger Ledger,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		ledger:          ledger,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute удаляет бронирование и записывает транзакцию возврата.
// Удаление и запись в журнал фиксируются вместе или не фиксируются вовсе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelReservation: reservation id=%d", req.ReservationID)

	// 1. Валидация входных данных
	if req.ReservationID <= 0 {
		uc.logger.Warn("CancelReservation: invalid reservation id=%d", req.ReservationID)
		return nil, fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	// 2. Получаем текущее время (дата отмены)
	now := uc.timeProvider.Now()

	var refund *ledger.Refund

	// 3. Удаляем бронирование и считаем возврат в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Удаляем бронирование из хранилища
		removed, err := uc.reservationRepo.Delete(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("CancelReservation: failed to delete reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to delete reservation: %v", ErrInternal, err)
		}

		// 3.2. Записываем транзакцию отмены с суммой возврата
		refund, err = uc.ledger.RecordCancellation(txCtx, removed, now)
		if err != nil {
			return fmt.Errorf("%w: failed to record cancellation: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			uc.logger.Warn("CancelReservation: reservation id=%d not found", req.ReservationID)
			return nil, err
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CancelReservation: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.ReservationCancelled(strconv.Itoa(refund.Percent), refund.Amount)
	uc.logger.Info("CancelReservation: successfully cancelled reservation id=%d, refund %d%% = %.2f",
		req.ReservationID, refund.Percent, refund.Amount)

	return &Response{
		ReservationID:   req.ReservationID,
		PercentReturned: refund.Percent,
		RefundAmount:    refund.Amount,
	}, nil
}

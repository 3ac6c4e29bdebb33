package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/admission"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	admission       AdmissionController
	pricing         PricingEngine
	ledger          Ledger
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	admission AdmissionController,
	pricing PricingEngine,
	ledger Ledger,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		admission:       admission,
		pricing:         pricing,
		ledger:          ledger,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: customer=%s, resource=%s, start=%s %s",
		req.CustomerID, req.Resource, req.StartDate, req.StartTime)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация входных данных и сборка кандидата
	candidate, err := buildReservation(req, now)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 3. Выполняем проверку и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем текущие бронирования
		existing, err := uc.reservationRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		// 3.2. Проверяем правила допуска
		if err := uc.admission.Admit(candidate, existing); err != nil {
			return err
		}

		// 3.3. Рассчитываем стоимость
		quote, err := uc.pricing.Quote(candidate)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to price reservation: %v", err)
			return fmt.Errorf("%w: failed to price reservation: %v", ErrInternal, err)
		}
		quote.Apply(candidate)

		// 3.4. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 3.5. Записываем транзакцию предоплаты
		if _, err := uc.ledger.RecordBooking(txCtx, created, now); err != nil {
			return fmt.Errorf("%w: failed to record booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if rej, ok := admission.AsRejection(err); ok {
			uc.logger.Warn("CreateReservation: rejected by %s: %s", rej.Rule, rej.Detail)
			uc.metrics.ReservationRejected(string(rej.Rule))
			return nil, err
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.ReservationCreated(string(result.Kind), result.DownPayment)
	uc.logger.Info("CreateReservation: successfully created reservation id=%d, %s %s..%s, total=%.2f",
		result.ID, result.Kind, calendar.FormatDate(result.StartDate), calendar.FormatDate(result.EndDate), result.TotalCost)

	return &Response{
		ReservationID:   result.ID,
		DiscountPercent: result.DiscountPercent,
		TotalCost:       result.TotalCost,
		DownPayment:     result.DownPayment,
	}, nil
}

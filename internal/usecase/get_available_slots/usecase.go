package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// UseCase use case для получения свободных слотов ресурса на день
type UseCase struct {
	reservationRepo ReservationRepository
	catalog         *domain.Catalog
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalog *domain.Catalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: resource=%s, date=%s", req.Resource, req.Date)

	// 1. Валидация входных данных
	kind, ok := domain.ParseResourceKind(req.Resource)
	if !ok {
		uc.logger.Warn("GetAvailableSlots: unknown resource %q", req.Resource)
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, req.Resource)
	}
	resource, ok := uc.catalog.Resource(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, kind)
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Проверяем дату относительно текущего дня
	now := uc.timeProvider.Now()
	if err := validateDate(date, now, uc.catalog.Rules.HorizonDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем окно работы на этот день
	window := uc.catalog.Hours.WindowFor(date)
	if window.IsClosed() {
		uc.logger.Info("GetAvailableSlots: facility is closed on %s", calendar.FormatDate(date))
		return &Response{
			Date:     date,
			Resource: kind,
			Open:     false,
			Slots:    []domain.AvailableSlot{},
		}, nil
	}

	// 4. Генерируем получасовые слоты
	timeSlots, err := generateTimeSlots(window)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 5. Получаем живые бронирования
	reservations, err := uc.reservationRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 6. Вычисляем свободные единицы в каждом слоте
	slots := calculateAvailableUnits(timeSlots, resource, uc.catalog.Rules, date, reservations)

	uc.logger.Info("GetAvailableSlots: generated %d slots for %s on %s",
		len(slots), kind, calendar.FormatDate(date))

	return &Response{
		Date:     date,
		Resource: kind,
		Open:     true,
		Slots:    slots,
	}, nil
}

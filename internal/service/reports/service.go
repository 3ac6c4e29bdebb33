package reports

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/reports/models"
)

// Service сервис отчетов; читает последний зафиксированный снимок
type Service struct {
	reservationRepo ReservationRepository
	transactionRepo TransactionRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	reservationRepo ReservationRepository,
	transactionRepo TransactionRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// ListReservations возвращает бронирования, начинающиеся в периоде, в порядке id
func (s *Service) ListReservations(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	customer := "all"
	if req.CustomerID != nil {
		customer = *req.CustomerID
	}
	s.logger.Info("ListReservations: period=%s to %s, customer=%s",
		calendar.FormatDate(req.From), calendar.FormatDate(req.To), customer)

	if req.To.Before(req.From) {
		s.logger.Warn("ListReservations: end %s before start %s", calendar.FormatDate(req.To), calendar.FormatDate(req.From))
		return nil, ErrInvalidTimeRange
	}

	var reservations []domain.Reservation
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		reservations, err = s.reservationRepo.ListByFilter(ctx, req.ToDomainFilter())
		return err
	})
	if err != nil {
		s.logger.Error("ListReservations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListReservations: found %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// ListTransactions возвращает транзакции с датой в периоде, в порядке id
func (s *Service) ListTransactions(ctx context.Context, req *models.ListTransactionsRequest) (*models.TransactionListResponse, error) {
	s.logger.Info("ListTransactions: period=%s to %s", calendar.FormatDate(req.From), calendar.FormatDate(req.To))

	if req.To.Before(req.From) {
		s.logger.Warn("ListTransactions: end %s before start %s", calendar.FormatDate(req.To), calendar.FormatDate(req.From))
		return nil, ErrInvalidTimeRange
	}

	var transactions []domain.Transaction
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		transactions, err = s.transactionRepo.ListByFilter(ctx, req.ToDomainFilter())
		return err
	})
	if err != nil {
		s.logger.Error("ListTransactions: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTransactions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTransactions: found %d transactions", len(transactions))
	return models.FromDomainTransactionList(transactions), nil
}

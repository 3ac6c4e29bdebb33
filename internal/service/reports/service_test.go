package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/state"
	transactionRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/transaction"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/reports/models"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

func may(d int) time.Time {
	return time.Date(2022, time.May, d, 0, 0, 0, 0, time.UTC)
}

func seededService(t *testing.T) *Service {
	t.Helper()

	booked := []domain.Reservation{
		{ID: 1, CustomerID: "alice", Kind: domain.KindWorkshop, StartDate: may(2), EndDate: may(2)},
		{ID: 2, CustomerID: "bob", Kind: domain.KindHarvester, StartDate: may(5), EndDate: may(5)},
		{ID: 3, CustomerID: "alice", Kind: domain.KindCrusher, StartDate: may(9), EndDate: may(9)},
	}

	initial := state.New()
	for i := range booked {
		r := &booked[i]
		r.StartTime, r.EndTime = "09:00", "10:00"
		r.CreatedOn = may(1)
		r.TotalCost, r.DownPayment = 100, 50

		initial.Transactions = append(initial.Transactions, domain.Transaction{
			ID:          r.ID,
			Type:        domain.TransactionReservation,
			Date:        may(1),
			Reservation: *r,
			Amount:      r.DownPayment,
		})
	}
	// бронь 2 отменена
	initial.Reservations = append(initial.Reservations, booked[0], booked[2])
	initial.Transactions = append(initial.Transactions, domain.Transaction{
		ID:          4,
		Type:        domain.TransactionCancellation,
		Date:        may(3),
		Reservation: booked[1],
		Amount:      25,
	})

	m, err := state.NewManager(context.Background(), state.NewMemoryBackend(initial), logger.NewNop())
	require.NoError(t, err)

	return NewService(reservationRepo.NewRepository(m), transactionRepo.NewRepository(m), m, logger.NewNop())
}

func TestService_ListReservations(t *testing.T) {
	svc := seededService(t)
	alice := "alice"
	nobody := "nobody"

	tests := []struct {
		name string
		req  models.ListReservationsRequest
		want []int64
	}{
		{name: "whole month", req: models.ListReservationsRequest{From: may(1), To: may(31)}, want: []int64{1, 3}},
		{name: "inclusive bounds", req: models.ListReservationsRequest{From: may(2), To: may(9)}, want: []int64{1, 3}},
		{name: "cancelled reservation is gone", req: models.ListReservationsRequest{From: may(5), To: may(5)}, want: []int64{}},
		{name: "customer filter", req: models.ListReservationsRequest{From: may(1), To: may(31), CustomerID: &alice}, want: []int64{1, 3}},
		{name: "unknown customer", req: models.ListReservationsRequest{From: may(1), To: may(31), CustomerID: &nobody}, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.ListReservations(context.Background(), &tt.req)
			require.NoError(t, err)
			require.NotNil(t, resp.Reservations)

			ids := make([]int64, 0)
			for _, r := range resp.Reservations {
				ids = append(ids, r.ReservationID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestService_ListReservationsFields(t *testing.T) {
	svc := seededService(t)

	resp, err := svc.ListReservations(context.Background(), &models.ListReservationsRequest{From: may(9), To: may(9)})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)

	assert.Equal(t, models.ReservationResponse{
		ReservationID: 3,
		CustomerID:    "alice",
		Resource:      "high-velocity-crusher",
		StartDate:     "05-09-2022",
		EndDate:       "05-09-2022",
		StartTime:     "09:00",
		EndTime:       "10:00",
		CreatedOn:     "05-01-2022",
		TotalCost:     100,
		DownPayment:   50,
	}, resp.Reservations[0])
}

func TestService_ListTransactions(t *testing.T) {
	svc := seededService(t)

	resp, err := svc.ListTransactions(context.Background(), &models.ListTransactionsRequest{From: may(1), To: may(3)})
	require.NoError(t, err)
	require.Len(t, resp.Transactions, 4)

	cancel := resp.Transactions[3]
	assert.Equal(t, "CANCELLATION", cancel.TransactionType)
	assert.Equal(t, int64(2), cancel.ReservationID)
	assert.Equal(t, "harvester", cancel.Resource)
	assert.Equal(t, 25.0, cancel.TransactionAmount)
	assert.Equal(t, 50.0, resp.Transactions[0].TransactionAmount)

	resp, err = svc.ListTransactions(context.Background(), &models.ListTransactionsRequest{From: may(2), To: may(2)})
	require.NoError(t, err)
	assert.Empty(t, resp.Transactions)
	assert.NotNil(t, resp.Transactions)
}

func TestService_InvalidRange(t *testing.T) {
	svc := seededService(t)

	_, err := svc.ListReservations(context.Background(), &models.ListReservationsRequest{From: may(9), To: may(2)})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = svc.ListTransactions(context.Background(), &models.ListTransactionsRequest{From: may(9), To: may(2)})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

type failingReservations struct{}

func (failingReservations) ListByFilter(context.Context, domain.ReservationsFilter) ([]domain.Reservation, error) {
	return nil, errors.New("boom")
}

type passThroughTx struct{}

func (passThroughTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestService_RepositoryError(t *testing.T) {
	svc := NewService(failingReservations{}, nil, passThroughTx{}, logger.NewNop())

	_, err := svc.ListReservations(context.Background(), &models.ListReservationsRequest{From: may(1), To: may(2)})
	assert.ErrorIs(t, err, ErrInternal)
}

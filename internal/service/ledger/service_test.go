package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

// mockTransactionRepository мок журнала транзакций
type mockTransactionRepository struct {
	appendFunc func(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	appended   []domain.Transaction
}

func (m *mockTransactionRepository) Append(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, t)
	}
	t.ID = int64(len(m.appended) + 1)
	m.appended = append(m.appended, *t)
	out := *t
	return &out, nil
}

func may(d int) time.Time {
	return time.Date(2022, time.May, d, 0, 0, 0, 0, time.UTC)
}

func cancelled(downPayment float64) *domain.Reservation {
	return &domain.Reservation{
		ID:          42,
		CustomerID:  "alice",
		Kind:        domain.KindMicrovac,
		StartDate:   may(20),
		EndDate:     may(20),
		StartTime:   "10:00",
		EndTime:     "11:00",
		CreatedOn:   may(1),
		TotalCost:   downPayment * 2,
		DownPayment: downPayment,
	}
}

func TestRefundPolicy_Tiers(t *testing.T) {
	policy := NewRefundPolicy(domain.DefaultRules().RefundTiers)

	tests := []struct {
		gap     int
		percent int
	}{
		{gap: 30, percent: 75},
		{gap: 10, percent: 75},
		{gap: 7, percent: 75},
		{gap: 6, percent: 50},
		{gap: 5, percent: 50},
		{gap: 2, percent: 50},
		{gap: 1, percent: 0},
		{gap: 0, percent: 0},
		{gap: -3, percent: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.percent, policy.Percent(tt.gap), "gap=%d", tt.gap)
	}
}

func TestRefundPolicy_RefundIsShareOfDownPayment(t *testing.T) {
	policy := NewRefundPolicy(domain.DefaultRules().RefundTiers)
	r := cancelled(500)

	tests := []struct {
		cancelOn int
		percent  int
		amount   float64
	}{
		{cancelOn: 10, percent: 75, amount: 375},
		{cancelOn: 15, percent: 50, amount: 250},
		{cancelOn: 19, percent: 0, amount: 0},
		{cancelOn: 20, percent: 0, amount: 0},
	}

	for _, tt := range tests {
		percent, amount := policy.Refund(r, may(tt.cancelOn))
		assert.Equal(t, tt.percent, percent)
		assert.Equal(t, tt.amount, amount)
	}
}

func TestRefundPolicy_UnorderedTiers(t *testing.T) {
	policy := NewRefundPolicy([]domain.RefundTier{
		{MinDays: 2, Percent: 50},
		{MinDays: 7, Percent: 75},
	})
	assert.Equal(t, 75, policy.Percent(8))
}

func TestService_RecordBooking(t *testing.T) {
	repo := &mockTransactionRepository{}
	svc := NewService(repo, NewRefundPolicy(domain.DefaultRules().RefundTiers), logger.NewNop())
	r := cancelled(1248.75)

	tx, err := svc.RecordBooking(context.Background(), r, time.Date(2022, time.May, 1, 15, 4, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, int64(1), tx.ID)
	assert.Equal(t, domain.TransactionReservation, tx.Type)
	assert.Equal(t, may(1), tx.Date)
	assert.Equal(t, 1248.75, tx.Amount)
	assert.Equal(t, *r, tx.Reservation)
}

func TestService_RecordCancellation(t *testing.T) {
	repo := &mockTransactionRepository{}
	svc := NewService(repo, NewRefundPolicy(domain.DefaultRules().RefundTiers), logger.NewNop())
	r := cancelled(1248.75)

	refund, err := svc.RecordCancellation(context.Background(), r, may(10))
	require.NoError(t, err)

	assert.Equal(t, 75, refund.Percent)
	assert.Equal(t, 936.56, refund.Amount)
	require.Len(t, repo.appended, 1)
	assert.Equal(t, domain.TransactionCancellation, repo.appended[0].Type)
	assert.Equal(t, int64(42), repo.appended[0].Reservation.ID)
	assert.Equal(t, 936.56, repo.appended[0].Amount)
}

func TestService_RecordCancellationFailure(t *testing.T) {
	repo := &mockTransactionRepository{
		appendFunc: func(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
			return nil, errors.New("no transaction")
		},
	}
	svc := NewService(repo, NewRefundPolicy(nil), logger.NewNop())

	_, err := svc.RecordCancellation(context.Background(), cancelled(100), may(2))
	assert.ErrorIs(t, err, ErrInternal)
}

package boltstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/state"
)

func newTestBackend(t *testing.T) (*Backend, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	b, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b, path
}

func day(d int) time.Time {
	return time.Date(2022, time.May, d, 0, 0, 0, 0, time.UTC)
}

func sampleState() *state.State {
	s := state.New()
	res := domain.Reservation{
		ID:              10,
		CustomerID:      "alice",
		Kind:            domain.KindCrusher,
		StartDate:       day(20),
		EndDate:         day(21),
		StartTime:       "09:00",
		EndTime:         "10:30",
		CreatedOn:       day(2),
		TotalCost:       45000,
		DownPayment:     22500,
		DiscountPercent: 25,
	}
	cancelled := res
	cancelled.ID = 2
	cancelled.Kind = domain.KindMicrovac

	s.Reservations = append(s.Reservations, res)
	s.Transactions = append(s.Transactions,
		domain.Transaction{ID: 1, Type: domain.TransactionReservation, Date: day(2), Reservation: cancelled, Amount: 500},
		domain.Transaction{ID: 2, Type: domain.TransactionReservation, Date: day(2), Reservation: res, Amount: 22500},
		domain.Transaction{ID: 3, Type: domain.TransactionCancellation, Date: day(3), Reservation: cancelled, Amount: 375},
	)
	return s
}

func TestBackend_EmptyDatabase(t *testing.T) {
	b, _ := newTestBackend(t)

	s, err := b.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, s.Reservations)
	assert.Empty(t, s.Transactions)
}

func TestBackend_SaveLoadRoundTrip(t *testing.T) {
	b, path := newTestBackend(t)
	ctx := context.Background()

	want := sampleState()
	require.NoError(t, b.Save(ctx, want))

	got, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// повторное открытие файла видит те же данные
	require.NoError(t, b.Close())
	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err = reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBackend_SaveReplacesPreviousState(t *testing.T) {
	b, _ := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Save(ctx, sampleState()))

	next := sampleState()
	next.Reservations = next.Reservations[:0]
	require.NoError(t, b.Save(ctx, next))

	got, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Reservations)
	assert.Len(t, got.Transactions, 3)
}

func TestBackend_KeysKeepIDOrder(t *testing.T) {
	b, _ := newTestBackend(t)
	ctx := context.Background()

	s := sampleState()
	first := s.Reservations[0]
	second := first
	second.ID = 256
	first.ID = 3
	s.Reservations = []domain.Reservation{first, second}
	require.NoError(t, b.Save(ctx, s))

	got, err := b.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Reservations, 2)
	assert.Equal(t, int64(3), got.Reservations[0].ID)
	assert.Equal(t, int64(256), got.Reservations[1].ID)
}

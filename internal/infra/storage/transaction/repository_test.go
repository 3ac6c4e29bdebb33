package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/state"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

func day(d int) time.Time {
	return time.Date(2022, time.May, d, 0, 0, 0, 0, time.UTC)
}

func TestRepository_AppendAndFilter(t *testing.T) {
	m, err := state.NewManager(context.Background(), state.NewMemoryBackend(nil), logger.NewNop())
	require.NoError(t, err)
	repo := NewRepository(m)
	ctx := context.Background()

	_, err = repo.Append(ctx, &domain.Transaction{Type: domain.TransactionReservation, Date: day(1)})
	assert.ErrorIs(t, err, ErrTransaction)

	require.NoError(t, m.DoSerializable(ctx, func(ctx context.Context) error {
		for _, d := range []int{1, 3, 7} {
			if _, err := repo.Append(ctx, &domain.Transaction{Type: domain.TransactionReservation, Date: day(d)}); err != nil {
				return err
			}
		}
		return nil
	}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[2].ID)

	got, err := repo.ListByFilter(ctx, domain.TransactionsFilter{From: day(3), To: day(7)})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

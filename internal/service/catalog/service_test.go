package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

func TestService_Get(t *testing.T) {
	s := NewService(domain.DefaultCatalog(), logger.NewNop())

	resp, err := s.Get(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Resources, 6)
	assert.Equal(t, "workshop", resp.Resources[0].Resource)
	assert.Equal(t, 15, resp.Resources[0].Capacity)
	assert.Equal(t, 49.5, resp.Resources[0].HalfHourRate)

	crusher := resp.Resources[4]
	assert.Equal(t, "high-velocity-crusher", crusher.Resource)
	assert.Equal(t, 10000.0, crusher.HalfHourRate)

	require.Len(t, resp.Hours, 7)
	assert.Equal(t, "Monday", resp.Hours[0].Weekday)
	require.NotNil(t, resp.Hours[0].Open)
	assert.Equal(t, "09:00", *resp.Hours[0].Open)
	assert.Equal(t, "Sunday", resp.Hours[6].Weekday)
	assert.Nil(t, resp.Hours[6].Open)

	assert.Equal(t, 30, resp.Rules.HorizonDays)
	assert.Len(t, resp.Rules.RefundTiers, 2)
}

func TestService_GetResource(t *testing.T) {
	s := NewService(domain.DefaultCatalog(), logger.NewNop())

	r, err := s.GetResource(context.Background(), "hvc")
	require.NoError(t, err)
	assert.Equal(t, "high-velocity-crusher", r.Resource)
	assert.Equal(t, 1, r.Capacity)

	_, err = s.GetResource(context.Background(), "laser")
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResourceKind(t *testing.T) {
	tests := []struct {
		input string
		want  ResourceKind
		ok    bool
	}{
		{input: "workshop", want: KindWorkshop, ok: true},
		{input: "HVC", want: KindCrusher, ok: true},
		{input: "high-velocity-crusher", want: KindCrusher, ok: true},
		{input: " harvester ", want: KindHarvester, ok: true},
		{input: "laser", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseResourceKind(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestReservation_Units(t *testing.T) {
	r := Reservation{
		StartDate: time.Date(2022, time.May, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2022, time.May, 4, 0, 0, 0, 0, time.UTC),
		StartTime: "10:30",
		EndTime:   "12:00",
	}

	assert.Equal(t, 3, r.HalfHours())
	assert.Equal(t, 3, r.DayCount())
	assert.True(t, r.ActiveAt(105))
	assert.True(t, r.ActiveAt(115))
	assert.False(t, r.ActiveAt(120))
	assert.True(t, r.OverlapsUnits(115, 130))
	assert.False(t, r.OverlapsUnits(120, 130))
	assert.True(t, r.CoversDay(time.Date(2022, time.May, 3, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.CoversDay(time.Date(2022, time.May, 5, 0, 0, 0, 0, time.UTC)))
}

func TestCatalog_Defaults(t *testing.T) {
	c := DefaultCatalog()

	crusher, ok := c.Resource(KindCrusher)
	require.True(t, ok)
	assert.Equal(t, 10000.0, crusher.HalfHourRate())

	workshop, ok := c.Resource(KindWorkshop)
	require.True(t, ok)
	assert.Equal(t, 49.5, workshop.HalfHourRate())
	assert.Equal(t, 15, workshop.Capacity)

	assert.True(t, c.Hours.WindowFor(time.Date(2022, time.May, 1, 0, 0, 0, 0, time.UTC)).IsClosed())
	saturday := c.Hours.WindowFor(time.Date(2022, time.April, 30, 0, 0, 0, 0, time.UTC))
	assert.True(t, saturday.Contains("10:00", "16:00"))
	assert.False(t, saturday.Contains("09:30", "11:00"))
}

func TestNewCatalog_MissingKind(t *testing.T) {
	resources := DefaultResources()[:5]
	_, err := NewCatalog(resources, DefaultOperatingHours(), DefaultRules())
	assert.Error(t, err)
}

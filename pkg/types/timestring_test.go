package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "padded", input: "09:30", want: "09:30"},
		{name: "single digit hour", input: "9:00", want: "09:00"},
		{name: "end of day", input: "24:00", want: "24:00"},
		{name: "missing minutes", input: "9", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "minute overflow", input: "10:75", wantErr: true},
		{name: "short minutes", input: "10:5", wantErr: true},
		{name: "past midnight", input: "24:30", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Units(t *testing.T) {
	assert.Equal(t, 90, TimeString("09:00").Units())
	assert.Equal(t, 105, TimeString("10:30").Units())
	assert.Equal(t, 105, TimeString("10:45").Units())
	assert.Equal(t, 160, TimeString("16:00").Units())
}

func TestTimeString_OnHalfHour(t *testing.T) {
	assert.True(t, TimeString("10:00").OnHalfHour())
	assert.True(t, TimeString("10:30").OnHalfHour())
	assert.False(t, TimeString("10:15").OnHalfHour())
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	got, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.True(t, TimeString("18:00").IsAfter("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2022, 4, 26, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:00"), ts)

	assert.Error(t, ts.Scan(42))
}

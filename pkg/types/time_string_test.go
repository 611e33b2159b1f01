package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTimeString(t *testing.T) {
	tests := []struct {
		raw    string
		want   TimeString
		wantOK bool
	}{
		{raw: "7:30", want: "07:30", wantOK: true},
		{raw: "07:30", want: "07:30", wantOK: true},
		{raw: " 9:05 ", want: "09:05", wantOK: true},
		{raw: "7h30", want: "07:30", wantOK: true},
		{raw: "13H00", want: "13:00", wantOK: true},
		{raw: "23:59", want: "23:59", wantOK: true},
		{raw: "24:00", wantOK: false},
		{raw: "23:61", wantOK: false},
		{raw: "7:3", wantOK: false},
		{raw: "", wantOK: false},
		{raw: "abc", wantOK: false},
		{raw: "123:00", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeTimeString(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizeHalfHour(t *testing.T) {
	got, ok := NormalizeHalfHour("7:30")
	require.True(t, ok)
	assert.Equal(t, TimeString("07:30"), got)

	_, ok = NormalizeHalfHour("07:31")
	assert.False(t, ok)

	_, ok = NormalizeHalfHour("23:61")
	assert.False(t, ok)

	got, ok = NormalizeHalfHour("10h00")
	require.True(t, ok)
	assert.Equal(t, TimeString("10:00"), got)
}

func TestTimeString_Arithmetic(t *testing.T) {
	ts := TimeString("07:30")

	m, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 450, m)

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:00"), next)

	_, err = TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	assert.True(t, TimeString("07:30").IsBefore("08:00"))
	assert.True(t, TimeString("08:00").IsAfter("07:30"))
	assert.False(t, TimeString("bad").IsBefore("08:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("09:30:00")))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan("17:00"))
	assert.Equal(t, TimeString("17:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_OnDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, loc)

	got, err := TimeString("10:30").OnDate(date, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 30, 0, 0, loc), got)
}

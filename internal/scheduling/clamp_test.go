package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

func TestClampToRange(t *testing.T) {
	window := domain.SlotWindow{Open: true, Start: "07:30", End: "17:30", MaxPerHalfHour: 1}

	tests := []struct {
		name   string
		raw    string
		want   types.TimeString
		wantOK bool
	}{
		{name: "before opening", raw: "07:05", want: "07:30", wantOK: true},
		{name: "late night", raw: "23:50", want: "17:30", wantOK: true},
		{name: "rounds down", raw: "10:14", want: "10:00", wantOK: true},
		{name: "rounds up", raw: "10:15", want: "10:30", wantOK: true},
		{name: "h separator", raw: "9h40", want: "09:30", wantOK: true},
		{name: "garbage", raw: "abc", wantOK: false},
		{name: "bad minutes", raw: "10:75", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClampToRange(tt.raw, window)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClampToRange_ReRoundsUnalignedEdge(t *testing.T) {
	window := domain.SlotWindow{Open: true, Start: "07:45", End: "17:30", MaxPerHalfHour: 1}

	got, ok := ClampToRange("06:00", window)
	assert.True(t, ok)
	assert.Equal(t, types.TimeString("08:00"), got)
}

func TestClampToRange_EndOfDay(t *testing.T) {
	window := domain.SlotWindow{Open: true, Start: "00:00", End: "23:59", MaxPerHalfHour: 1}

	got, ok := ClampToRange("23:50", window)
	assert.True(t, ok)
	assert.Equal(t, types.TimeString("23:30"), got)
}

func TestClampToRange_ClosedWindow(t *testing.T) {
	_, ok := ClampToRange("10:00", domain.SlotWindow{})
	assert.False(t, ok)
}

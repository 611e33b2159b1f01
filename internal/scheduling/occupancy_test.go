package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/ptr"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

type stubLister struct {
	bookings []domain.Booking
	err      error
	calls    int
}

func (s *stubLister) ListByDate(ctx context.Context, d time.Time) ([]domain.Booking, error) {
	s.calls++
	return s.bookings, s.err
}

func TestBuildOccupancy_CancelledDoesNotOccupy(t *testing.T) {
	cancelled := []domain.Booking{{ID: 1, Time: "09:00", Status: domain.StatusCancelled}}
	assert.False(t, BuildOccupancy(cancelled, nil).Contains("09:00"))

	scheduled := []domain.Booking{{ID: 2, Time: "09:00", Status: domain.StatusScheduled}}
	assert.True(t, BuildOccupancy(scheduled, nil).Contains("09:00"))
}

func TestBuildOccupancy_ExcludesEditedBooking(t *testing.T) {
	bookings := []domain.Booking{
		{ID: 1, Time: "09:00", Status: domain.StatusScheduled},
		{ID: 2, Time: "10:00", Status: domain.StatusConfirmed},
	}

	idx := BuildOccupancy(bookings, ptr.Ptr(int64(1)))
	assert.False(t, idx.Contains("09:00"))
	assert.True(t, idx.Contains("10:00"))
}

func TestBuildOccupancy_DropsMalformedAndDedups(t *testing.T) {
	bookings := []domain.Booking{
		{ID: 1, Time: "", Status: domain.StatusScheduled},
		{ID: 2, Time: "xx", Status: domain.StatusScheduled},
		{ID: 3, Time: "9:00", Status: domain.StatusScheduled},
		{ID: 4, Time: "09:00", Status: domain.StatusReceived},
	}

	idx := BuildOccupancy(bookings, nil)
	assert.Equal(t, 1, idx.Len())
	assert.Equal(t, []types.TimeString{"09:00"}, idx.Times())
}

func TestBuildOccupancy_OrderIndependent(t *testing.T) {
	a := domain.Booking{ID: 1, Time: "11:00", Status: domain.StatusScheduled}
	b := domain.Booking{ID: 2, Time: "08:30", Status: domain.StatusScheduled}

	assert.Equal(t,
		BuildOccupancy([]domain.Booking{a, b}, nil).Times(),
		BuildOccupancy([]domain.Booking{b, a}, nil).Times(),
	)
}

func TestLoadOccupancy_PropagatesError(t *testing.T) {
	boom := errors.New("db down")
	_, err := LoadOccupancy(context.Background(), &stubLister{err: boom}, date(2025, time.June, 2), nil)
	require.ErrorIs(t, err, boom)
}

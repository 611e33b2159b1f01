package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

type stubLister struct {
	bookings []domain.Booking
	err      error
}

func (s stubLister) ListByDate(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	return s.bookings, s.err
}

type stubSchedule struct {
	err error
}

func (s stubSchedule) GetSchedule(ctx context.Context) (domain.WeeklySchedule, error) {
	return domain.NewWeeklySchedule(domain.DefaultOpeningHours()), s.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var saturday = time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC)

func newUseCase(lister BookingLister, schedule ScheduleProvider, now time.Time) *UseCase {
	return NewUseCase(lister, schedule, fixedTime{now: now}, time.Minute, time.UTC, logger.NewNop())
}

func TestExecute_SaturdayGrid(t *testing.T) {
	lister := stubLister{bookings: []domain.Booking{
		{ID: 1, Time: "09:00", Status: domain.StatusScheduled},
		{ID: 2, Time: "09:30", Status: domain.StatusCancelled},
	}}
	now := time.Date(2025, time.June, 6, 12, 0, 0, 0, time.UTC)

	resp, err := newUseCase(lister, stubSchedule{}, now).Execute(context.Background(), &Request{Date: saturday})

	require.NoError(t, err)
	assert.False(t, resp.Closed)
	// 07:30 .. 13:00 включительно
	require.Len(t, resp.Slots, 12)
	assert.Equal(t, "07:30", resp.Slots[0].StartTime.String())
	assert.Equal(t, "13:00", resp.Slots[11].StartTime.String())

	byTime := map[string]Slot{}
	for _, s := range resp.Slots {
		byTime[s.StartTime.String()] = s
	}
	assert.False(t, byTime["09:00"].Available)
	assert.Equal(t, 0, byTime["09:00"].AvailableSpots)
	assert.True(t, byTime["09:30"].Available)
	assert.Equal(t, 1, byTime["09:30"].TotalSpots)
}

func TestExecute_PastSlotsOfToday(t *testing.T) {
	now := time.Date(2025, time.June, 7, 10, 5, 0, 0, time.UTC)

	resp, err := newUseCase(stubLister{}, stubSchedule{}, now).Execute(context.Background(), &Request{Date: saturday})

	require.NoError(t, err)
	for _, s := range resp.Slots {
		m, _ := s.StartTime.Minutes()
		assert.Equal(t, m < 10*60+30, s.Past, s.StartTime)
	}
}

func TestExecute_ClosedDay(t *testing.T) {
	sunday := time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)
	lister := stubLister{err: errors.New("must not be called")}

	resp, err := newUseCase(lister, stubSchedule{}, saturday).Execute(context.Background(), &Request{Date: sunday})

	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	_, err := newUseCase(stubLister{}, stubSchedule{}, saturday).Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = newUseCase(stubLister{}, stubSchedule{err: errors.New("down")}, saturday).Execute(context.Background(), &Request{Date: saturday})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = newUseCase(stubLister{err: errors.New("down")}, stubSchedule{}, saturday).Execute(context.Background(), &Request{Date: saturday})
	assert.ErrorIs(t, err, ErrUnavailable)
}

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

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubSchedule struct {
	schedule domain.WeeklySchedule
	err      error
}

func (s stubSchedule) GetSchedule(ctx context.Context) (domain.WeeklySchedule, error) {
	return s.schedule, s.err
}

var defaultSchedule = domain.NewWeeklySchedule(domain.DefaultOpeningHours())

// Воскресенье 2025-06-01 08:00 UTC
var testNow = time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

func admit(d time.Time, raw string, occupied ...domain.Booking) (types.TimeString, *Rejection) {
	return Admit(AdmissionInput{
		Date:      d,
		RawTime:   raw,
		Schedule:  defaultSchedule,
		Occupancy: BuildOccupancy(occupied, nil),
		Now:       testNow,
		Grace:     time.Minute,
		Location:  time.UTC,
	})
}

func TestAdmit_Reasons(t *testing.T) {
	monday := date(2025, time.June, 2)

	tests := []struct {
		name   string
		date   time.Time
		raw    string
		err    error
		reason string
	}{
		{name: "missing date", date: time.Time{}, raw: "10:00", err: ErrDateTimeRequired, reason: "date/time required"},
		{name: "missing time", date: monday, raw: " ", err: ErrDateTimeRequired, reason: "date/time required"},
		{name: "garbage", date: monday, raw: "ten", err: ErrInvalidTime, reason: "invalid time"},
		{name: "minute 61", date: monday, raw: "23:61", err: ErrInvalidTime, reason: "invalid time"},
		{name: "not half hour", date: monday, raw: "07:31", err: ErrNotHalfHour, reason: "must choose a time on the half hour"},
		{name: "sunday", date: date(2025, time.June, 1), raw: "10:00", err: ErrClosedDay, reason: "closed on Sundays"},
		{name: "weekday too early", date: monday, raw: "07:00", err: ErrOutsideHours, reason: "weekday hours are 07:30-17:30"},
		{name: "weekday too late", date: monday, raw: "18:00", err: ErrOutsideHours, reason: "weekday hours are 07:30-17:30"},
		{name: "saturday afternoon", date: date(2025, time.June, 7), raw: "13:30", err: ErrOutsideHours, reason: "Saturday hours are 07:30-13:00"},
		{name: "past", date: date(2025, time.May, 30), raw: "10:00", err: ErrInPast, reason: "cannot book in the past"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rej := admit(tt.date, tt.raw)
			require.NotNil(t, rej)
			assert.ErrorIs(t, rej, tt.err)
			assert.Equal(t, tt.reason, rej.Reason)
		})
	}
}

func TestAdmit_FirstFailingCheckWins(t *testing.T) {
	// Воскресенье в прошлом и не на получасе: побеждает проверка получаса
	_, rej := admit(date(2025, time.May, 25), "10:10")
	require.NotNil(t, rej)
	assert.ErrorIs(t, rej, ErrNotHalfHour)

	// Воскресенье в прошлом: побеждает выходной
	_, rej = admit(date(2025, time.May, 25), "10:00")
	require.NotNil(t, rej)
	assert.ErrorIs(t, rej, ErrClosedDay)
}

func TestAdmit_WindowEdgesAreAdmissible(t *testing.T) {
	monday := date(2025, time.June, 2)

	ts, rej := admit(monday, "7:30")
	assert.Nil(t, rej)
	assert.Equal(t, types.TimeString("07:30"), ts)

	_, rej = admit(monday, "17:30")
	assert.Nil(t, rej)
}

func TestAdmit_SlotTaken(t *testing.T) {
	monday := date(2025, time.June, 2)
	existing := domain.Booking{ID: 7, Time: "10:00", Status: domain.StatusScheduled}

	_, rej := admit(monday, "10:00", existing)
	require.NotNil(t, rej)
	assert.ErrorIs(t, rej, ErrSlotUnavailable)
	assert.Equal(t, "slot unavailable, choose another time", rej.Reason)
	assert.Equal(t, "slot_unavailable", rej.Kind())

	_, rej = admit(monday, "10:30", existing)
	assert.Nil(t, rej)
}

func TestAdmit_PastGrace(t *testing.T) {
	now := time.Date(2025, time.June, 2, 10, 0, 30, 0, time.UTC)
	in := AdmissionInput{
		Date:     date(2025, time.June, 2),
		RawTime:  "10:00",
		Schedule: defaultSchedule,
		Now:      now,
		Grace:    time.Minute,
		Location: time.UTC,
	}

	_, rej := Admit(in)
	assert.Nil(t, rej, "30 seconds late is within grace")

	in.Now = now.Add(time.Minute)
	_, rej = Admit(in)
	require.NotNil(t, rej)
	assert.ErrorIs(t, rej, ErrInPast)
}

func TestAdmit_ConfigurableHours(t *testing.T) {
	schedule := domain.NewWeeklySchedule([]domain.OpeningHoursRule{
		domain.OpenRule(int(time.Sunday), "09:00", "11:00"),
		domain.ClosedRule(int(time.Monday)),
	})

	in := AdmissionInput{Date: date(2025, time.June, 8), RawTime: "10:30", Schedule: schedule, Now: testNow, Location: time.UTC}
	_, rej := Admit(in)
	assert.Nil(t, rej)

	in.RawTime = "11:30"
	_, rej = Admit(in)
	require.NotNil(t, rej)
	assert.Equal(t, "Sunday hours are 09:00-11:00", rej.Reason)

	in.Date = date(2025, time.June, 9)
	in.RawTime = "10:00"
	_, rej = Admit(in)
	require.NotNil(t, rej)
	assert.Equal(t, "closed on Mondays", rej.Reason)
}

func TestValidator_EndToEnd(t *testing.T) {
	lister := &stubLister{bookings: []domain.Booking{
		{ID: 1, Time: "10:00", Status: domain.StatusScheduled},
		{ID: 2, Time: "11:00", Status: domain.StatusCancelled},
	}}
	v := NewValidator(lister, stubSchedule{schedule: defaultSchedule}, fixedTime{now: testNow}, time.Minute, time.UTC)
	ctx := context.Background()
	monday := date(2025, time.June, 2)

	_, rej, err := v.Validate(ctx, monday, "10:00", nil)
	require.NoError(t, err)
	require.NotNil(t, rej)
	assert.ErrorIs(t, rej, ErrSlotUnavailable)

	ts, rej, err := v.Validate(ctx, monday, "10:30", nil)
	require.NoError(t, err)
	assert.Nil(t, rej)
	assert.Equal(t, types.TimeString("10:30"), ts)

	// Повторная проверка без записи даёт тот же результат
	ts2, rej, err := v.Validate(ctx, monday, "10:30", nil)
	require.NoError(t, err)
	assert.Nil(t, rej)
	assert.Equal(t, ts, ts2)

	// Редактируемая запись не мешает сама себе
	_, rej, err = v.Validate(ctx, monday, "10:00", ptr.Ptr(int64(1)))
	require.NoError(t, err)
	assert.Nil(t, rej)

	// Отменённая запись не занимает слот
	_, rej, err = v.Validate(ctx, monday, "11:00", nil)
	require.NoError(t, err)
	assert.Nil(t, rej)
}

func TestValidator_SundayRejectedWithoutLoadingBookings(t *testing.T) {
	lister := &stubLister{}
	v := NewValidator(lister, stubSchedule{schedule: defaultSchedule}, fixedTime{now: testNow}, time.Minute, time.UTC)

	_, rej, err := v.Validate(context.Background(), date(2025, time.June, 1), "10:00", nil)
	require.NoError(t, err)
	require.NotNil(t, rej)
	assert.Equal(t, "closed on Sundays", rej.Reason)
	assert.Zero(t, lister.calls)
}

func TestValidator_CollaboratorFailures(t *testing.T) {
	boom := errors.New("boom")
	monday := date(2025, time.June, 2)

	v := NewValidator(&stubLister{}, stubSchedule{err: boom}, fixedTime{now: testNow}, time.Minute, time.UTC)
	_, rej, err := v.Validate(context.Background(), monday, "10:00", nil)
	assert.Nil(t, rej)
	assert.ErrorIs(t, err, ErrScheduleUnavailable)
	assert.ErrorIs(t, err, boom)

	v = NewValidator(&stubLister{err: boom}, stubSchedule{schedule: defaultSchedule}, fixedTime{now: testNow}, time.Minute, time.UTC)
	_, rej, err = v.Validate(context.Background(), monday, "10:00", nil)
	assert.Nil(t, rej)
	assert.ErrorIs(t, err, ErrOccupancyUnavailable)
}

package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

var (
	// ErrScheduleUnavailable не удалось получить часы работы
	ErrScheduleUnavailable = errors.New("scheduling: opening hours unavailable")

	// ErrOccupancyUnavailable не удалось получить записи на дату
	ErrOccupancyUnavailable = errors.New("scheduling: bookings unavailable")
)

// Validator проверка допуска записи с подключёнными зависимостями.
// Часы работы и записи читаются только после дешёвых проверок.
type Validator struct {
	bookings     BookingLister
	schedule     ScheduleProvider
	timeProvider TimeProvider
	grace        time.Duration
	location     *time.Location
}

// NewValidator создает новый экземпляр проверки допуска
func NewValidator(
	bookings BookingLister,
	schedule ScheduleProvider,
	timeProvider TimeProvider,
	grace time.Duration,
	location *time.Location,
) *Validator {
	if location == nil {
		location = time.Local
	}
	return &Validator{
		bookings:     bookings,
		schedule:     schedule,
		timeProvider: timeProvider,
		grace:        grace,
		location:     location,
	}
}

// Validate решает, можно ли записать на (date, raw).
// *Rejection означает отказ по правилам, error означает сбой хранилища.
func (v *Validator) Validate(ctx context.Context, date time.Time, raw string, excludeID *int64) (types.TimeString, *Rejection, error) {
	ts, rej := CheckFormat(date, raw)
	if rej != nil {
		return "", rej, nil
	}

	schedule, err := v.schedule.GetSchedule(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrScheduleUnavailable, err)
	}
	if rej = CheckWindow(date, ts, schedule); rej != nil {
		return "", rej, nil
	}
	if rej = CheckNotPast(date, ts, v.timeProvider.Now(), v.grace, v.location); rej != nil {
		return "", rej, nil
	}

	occupancy, err := LoadOccupancy(ctx, v.bookings, date, excludeID)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrOccupancyUnavailable, err)
	}
	if rej = CheckOccupancy(ts, occupancy); rej != nil {
		return "", rej, nil
	}

	return ts, nil, nil
}

// Window возвращает окно работы на дату
func (v *Validator) Window(ctx context.Context, date time.Time) (domain.SlotWindow, error) {
	schedule, err := v.schedule.GetSchedule(ctx)
	if err != nil {
		return domain.SlotWindow{}, fmt.Errorf("%w: %w", ErrScheduleUnavailable, err)
	}
	return ComputeSlotGrid(date, schedule), nil
}

// Location returns the business time zone
func (v *Validator) Location() *time.Location {
	return v.location
}

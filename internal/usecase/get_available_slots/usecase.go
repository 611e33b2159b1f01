package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/scheduling"
)

// UseCase use case для получения сетки слотов на дату
type UseCase struct {
	bookings     BookingLister
	schedule     ScheduleProvider
	timeProvider TimeProvider
	grace        time.Duration
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookings BookingLister,
	schedule ScheduleProvider,
	timeProvider TimeProvider,
	grace time.Duration,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		bookings:     bookings,
		schedule:     schedule,
		timeProvider: timeProvider,
		grace:        grace,
		location:     location,
		logger:       logger,
	}
}

// Execute возвращает все слоты дня с отметкой доступности.
// Для закрытого дня возвращается Closed=true и пустой список.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Часы работы на день недели
	schedule, err := uc.schedule.GetSchedule(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get opening hours: %v", err)
		return nil, fmt.Errorf("%w: opening hours: %v", ErrUnavailable, err)
	}

	window := scheduling.ComputeSlotGrid(req.Date, schedule)
	if !window.Open {
		uc.logger.Info("GetAvailableSlots: closed on %s", req.Date.Weekday())
		return &Response{Date: req.Date, Closed: true, Slots: []Slot{}}, nil
	}

	// 3. Занятость
	occupancy, err := scheduling.LoadOccupancy(ctx, uc.bookings, req.Date, nil)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: bookings: %v", ErrUnavailable, err)
	}

	slots := buildSlots(req.Date, window, occupancy, uc.timeProvider.Now(), uc.grace, uc.location)

	uc.logger.Info("GetAvailableSlots: %d slots, %d occupied", len(slots), occupancy.Len())

	return &Response{
		Date:           req.Date,
		OpenTime:       window.Start,
		CloseTime:      window.End,
		MaxPerHalfHour: window.MaxPerHalfHour,
		Slots:          slots,
	}, nil
}

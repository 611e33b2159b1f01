package update_booking

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// validateRequest валидирует входные данные и возвращает новый и исходный статусы
func validateRequest(req *Request) (domain.BookingStatus, *domain.BookingStatus, error) {
	if req.ID <= 0 {
		return "", nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return "", nil, fmt.Errorf("%w: customerId must be positive", ErrInvalidInput)
	}

	if req.PetID != nil && *req.PetID <= 0 {
		return "", nil, fmt.Errorf("%w: petId must be positive", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return "", nil, fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Notes) > domain.MaxNotesLength {
		return "", nil, fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		return "", nil, fmt.Errorf("%w: status: %v", ErrInvalidInput, err)
	}

	if req.PreviousStatus == nil {
		return status, nil, nil
	}
	previous, err := domain.ParseBookingStatus(*req.PreviousStatus)
	if err != nil {
		return "", nil, fmt.Errorf("%w: previousStatus: %v", ErrInvalidInput, err)
	}
	return status, &previous, nil
}

// slotChanged сообщает, что запись переносится на другую дату или время
func slotChanged(current *domain.Booking, date time.Time, raw string) bool {
	if !isSameDay(current.Date, date) {
		return true
	}
	ts, ok := types.NormalizeTimeString(raw)
	return !ok || ts != current.Time
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

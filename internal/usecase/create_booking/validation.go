package create_booking

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// validateRequest валидирует входные данные и возвращает начальный статус
func validateRequest(req *Request) (domain.BookingStatus, error) {
	if req.CustomerID <= 0 {
		return "", fmt.Errorf("%w: customerId must be positive", ErrInvalidInput)
	}

	if req.PetID != nil && *req.PetID <= 0 {
		return "", fmt.Errorf("%w: petId must be positive", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return "", fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Notes) > domain.MaxNotesLength {
		return "", fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Status == nil {
		return domain.StatusScheduled, nil
	}

	status, err := domain.ParseBookingStatus(*req.Status)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return status, nil
}

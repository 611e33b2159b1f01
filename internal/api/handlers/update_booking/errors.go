package update_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	updateBooking "github.com/m04kA/SMC-GroomingService/internal/usecase/update_booking"
)

const (
	msgNotFound          = "запись не найдена"
	msgSlotTaken         = "slot unavailable, choose another time"
	msgPetNotFound       = "питомец не найден"
	msgPetNotOwned       = "питомец принадлежит другому клиенту"
	msgServiceNotFound   = "услуга не найдена"
	msgReferenceNotFound = "клиент, питомец или услуга не существуют"
)

// RespondUseCaseError переводит ошибки сохранения записи в HTTP ответ.
// Используется также обработчиком отмены.
func RespondUseCaseError(w http.ResponseWriter, r *http.Request, logger Logger, op string, bookingID int64, err error) {
	if rej, ok := handlers.AsRejection(err); ok {
		logger.Warn("%s - Admission rejected: booking_id=%d, reason=%s", op, bookingID, rej.Reason)
		handlers.RespondUnprocessable(w, rej.Reason)
		return
	}

	switch {
	case errors.Is(err, updateBooking.ErrInvalidInput):
		logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, updateBooking.ErrBookingNotFound):
		logger.Warn("%s - Booking not found: booking_id=%d", op, bookingID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, updateBooking.ErrSlotConflict):
		logger.Warn("%s - Slot taken concurrently: booking_id=%d", op, bookingID)
		handlers.RespondConflict(w, msgSlotTaken)

	case errors.Is(err, updateBooking.ErrPetNotFound):
		handlers.RespondNotFound(w, msgPetNotFound)

	case errors.Is(err, updateBooking.ErrPetNotOwned):
		handlers.RespondBadRequest(w, msgPetNotOwned)

	case errors.Is(err, updateBooking.ErrServiceNotFound):
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, updateBooking.ErrReferenceNotFound):
		handlers.RespondConflict(w, msgReferenceNotFound)

	case errors.Is(err, updateBooking.ErrUnavailable):
		logger.Error("%s - Storage unavailable: booking_id=%d, error=%v", op, bookingID, err)
		handlers.RespondUnavailable(w)

	default:
		logger.Error("%s - Failed to save booking: booking_id=%d, error=%v", op, bookingID, err)
		handlers.RespondUnexpected(w, r, err)
	}
}

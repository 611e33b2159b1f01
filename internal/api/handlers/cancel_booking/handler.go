package cancel_booking

import (
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	updateBookingHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/update_booking"
)

const msgInvalidBookingID = "некорректный ID записи"

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Cancel(r.Context(), bookingID)
	if err != nil {
		updateBookingHandler.RespondUseCaseError(w, r, h.logger, "PATCH /bookings/{id}/cancel", bookingID, err)
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, updateBookingHandler.FromUseCaseResponse(result))
}

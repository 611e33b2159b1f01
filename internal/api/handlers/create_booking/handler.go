package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-GroomingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSlotTaken          = "slot unavailable, choose another time"
	msgPetNotFound        = "питомец не найден"
	msgPetNotOwned        = "питомец принадлежит другому клиенту"
	msgServiceNotFound    = "услуга не найдена"
	msgReferenceNotFound  = "клиент, питомец или услуга не существуют"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if rej, ok := handlers.AsRejection(err); ok {
			h.logger.Warn("POST /bookings - Admission rejected: customer_id=%d, reason=%s", req.CustomerID, rej.Reason)
			handlers.RespondUnprocessable(w, rej.Reason)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot taken concurrently: customer_id=%d", req.CustomerID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrPetNotFound):
			handlers.RespondNotFound(w, msgPetNotFound)

		case errors.Is(err, createBooking.ErrPetNotOwned):
			handlers.RespondBadRequest(w, msgPetNotOwned)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrReferenceNotFound):
			handlers.RespondConflict(w, msgReferenceNotFound)

		case errors.Is(err, createBooking.ErrUnavailable):
			h.logger.Error("POST /bookings - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, error=%v", req.CustomerID, err)
			handlers.RespondUnexpected(w, r, err)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer_id=%d",
		result.ID, result.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

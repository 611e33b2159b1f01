package validate_admission

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	validateAdmission "github.com/m04kA/SMC-GroomingService/internal/usecase/validate_admission"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase ValidateAdmissionUseCase
	logger  Logger
}

func NewHandler(useCase ValidateAdmissionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/admission
// Отказ в допуске - это 200 с ok=false: форма показывает причину рядом с полем.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AdmissionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/admission - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/admission - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, validateAdmission.ErrUnavailable) {
			h.logger.Error("POST /bookings/admission - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w)
			return
		}
		h.logger.Error("POST /bookings/admission - Failed to validate: %v", err)
		handlers.RespondUnexpected(w, r, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

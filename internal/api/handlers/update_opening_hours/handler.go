package update_opening_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingService/internal/service/openinghours"
	"github.com/m04kA/SMC-GroomingService/internal/service/openinghours/models"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidRules = "некорректные часы работы: день 0-6, открытие раньше закрытия, время HH:MM"
)

type Handler struct {
	service OpeningHoursService
	logger  Logger
}

func NewHandler(service OpeningHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/opening-hours
// Заменяет таблицу целиком; дни, не переданные в запросе, становятся закрытыми.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ReplaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /opening-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Replace(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, openinghours.ErrInvalidInput):
			h.logger.Warn("PUT /opening-hours - Invalid rules: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRules)

		case errors.Is(err, openinghours.ErrUnavailable):
			h.logger.Warn("PUT /opening-hours - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w)

		default:
			h.logger.Error("PUT /opening-hours - Failed to replace opening hours: %v", err)
			handlers.RespondUnexpected(w, r, err)
		}
		return
	}

	h.logger.Info("PUT /opening-hours - Opening hours replaced: rules=%d", len(req.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}

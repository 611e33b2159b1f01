package get_opening_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingService/internal/service/openinghours"
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

// Handle GET /api/v1/opening-hours
// Всегда возвращает семь дней; ненастроенные дни закрыты.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, openinghours.ErrUnavailable) {
			h.logger.Warn("GET /opening-hours - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w)
			return
		}
		h.logger.Error("GET /opening-hours - Failed to get opening hours: %v", err)
		handlers.RespondUnexpected(w, r, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

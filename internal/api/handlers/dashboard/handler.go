package dashboard

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	service      BookingService
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

func NewHandler(service BookingService, timeProvider TimeProvider, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:      service,
		timeProvider: timeProvider,
		location:     location,
		logger:       logger,
	}
}

// Handle GET /api/v1/dashboard?date=
// Без date используется текущий день в часовом поясе салона.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /dashboard - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if date.IsZero() {
		y, m, d := h.timeProvider.Now().In(h.location).Date()
		date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	result, err := h.service.Dashboard(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /dashboard - Failed to build dashboard: %v", err)
		handlers.RespondUnexpected(w, r, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

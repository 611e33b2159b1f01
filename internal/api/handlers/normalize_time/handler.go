package normalize_time

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	normalizeTime "github.com/m04kA/SMC-GroomingService/internal/usecase/normalize_time"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime = "некорректное время, ожидается HH:MM"
)

type Handler struct {
	useCase NormalizeTimeUseCase
	logger  Logger
}

func NewHandler(useCase NormalizeTimeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/normalize-time?date=&time=
// Подгоняет введённое время под часы работы и сетку 30 минут.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.ParseDate(r.URL.Query().Get("date"))
	if err != nil || date.IsZero() {
		h.logger.Warn("GET /schedule/normalize-time - Invalid date: %q", r.URL.Query().Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &normalizeTime.Request{
		Date: date,
		Time: r.URL.Query().Get("time"),
	})
	if err != nil {
		switch {
		case errors.Is(err, normalizeTime.ErrInvalidTime):
			h.logger.Warn("GET /schedule/normalize-time - Invalid time: %v", err)
			handlers.RespondUnprocessable(w, msgInvalidTime)

		case errors.Is(err, normalizeTime.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, normalizeTime.ErrUnavailable):
			h.logger.Warn("GET /schedule/normalize-time - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w)

		default:
			h.logger.Error("GET /schedule/normalize-time - Failed to normalize time: %v", err)
			handlers.RespondUnexpected(w, r, err)
		}
		return
	}

	resp := NormalizeTimeResponse{Closed: result.Closed}
	if !result.Closed {
		resp.Time = result.Time.String()
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

package export_bookings

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/service/bookings"
)

const msgInvalidPeriod = "укажите период from и to в формате YYYY-MM-DD"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/export?from=&to=
// Файл собирается в памяти целиком, чтобы ошибка не оборвала уже начатый ответ.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, errFrom := handlers.ParseDate(r.URL.Query().Get("from"))
	to, errTo := handlers.ParseDate(r.URL.Query().Get("to"))
	if errFrom != nil || errTo != nil || from.IsZero() || to.IsZero() {
		h.logger.Warn("GET /bookings/export - Invalid period: from=%q, to=%q", r.URL.Query().Get("from"), r.URL.Query().Get("to"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	var buf bytes.Buffer
	if err := h.service.Export(r.Context(), from, to, &buf); err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPeriod)
		default:
			h.logger.Error("GET /bookings/export - Failed to export: %v", err)
			handlers.RespondUnexpected(w, r, err)
		}
		return
	}

	filename := fmt.Sprintf("agendamentos_%s_%s.xlsx", from.Format(domain.DateFormat), to.Format(domain.DateFormat))
	w.Header().Set("Content-Type", h.service.ExportContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /bookings/export - Client write failed: %v", err)
		return
	}

	h.logger.Info("GET /bookings/export - Exported period %s..%s", from.Format(domain.DateFormat), to.Format(domain.DateFormat))
}

package export_bookings

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GroomingService/internal/service/bookings"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

type stubService struct {
	err error
}

func (s stubService) Export(ctx context.Context, from, to time.Time, w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	_, err := w.Write([]byte("xlsx"))
	return err
}

func (stubService) ExportContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func get(h *Handler, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/export"+query, nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := get(NewHandler(stubService{}, logger.NewNop()), "?from=2025-06-01&to=2025-06-30")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "xlsx", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "agendamentos_2025-06-01_2025-06-30.xlsx")
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get(NewHandler(stubService{}, logger.NewNop()), "?from=2025-06-01").Code)
	assert.Equal(t, http.StatusBadRequest, get(NewHandler(stubService{err: bookings.ErrInvalidInput}, logger.NewNop()), "?from=2025-06-30&to=2025-06-01").Code)
	assert.Equal(t, http.StatusInternalServerError, get(NewHandler(stubService{err: bookings.ErrInternal}, logger.NewNop()), "?from=2025-06-01&to=2025-06-30").Code)
}

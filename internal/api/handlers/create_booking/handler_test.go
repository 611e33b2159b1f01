package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingService/internal/scheduling"
	"github.com/m04kA/SMC-GroomingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-GroomingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*models.BookingResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.CustomerID == 7 && r.Time == "10h30" && r.Date.Day() == 2
	})).Return(&models.BookingResponse{ID: 1, CustomerID: 7, Time: "10:30", Status: "agendado"}, nil)

	rec := post(NewHandler(uc, logger.NewNop()), `{"customerId":7,"date":"2025-06-02","time":"10h30"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "10:30", got.Time)
}

func TestHandle_Rejection(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, &scheduling.Rejection{Err: scheduling.ErrClosedDay, Reason: "closed on Sundays"})

	rec := post(NewHandler(uc, logger.NewNop()), `{"customerId":7,"date":"2025-06-01","time":"10:00"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "closed on Sundays", body.Error)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{createBooking.ErrSlotConflict, http.StatusConflict},
		{createBooking.ErrPetNotOwned, http.StatusBadRequest},
		{createBooking.ErrPetNotFound, http.StatusNotFound},
		{createBooking.ErrUnavailable, http.StatusServiceUnavailable},
		{createBooking.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			rec := post(NewHandler(uc, logger.NewNop()), `{"customerId":7,"date":"2025-06-02","time":"10:00"}`)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandle_BadInput(t *testing.T) {
	uc := new(mockUseCase)
	h := NewHandler(uc, logger.NewNop())

	assert.Equal(t, http.StatusBadRequest, post(h, `{`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, `{"customerId":7,"date":"02/06/2025","time":"10:00"}`).Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

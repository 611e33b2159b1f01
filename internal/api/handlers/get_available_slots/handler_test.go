package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-GroomingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getAvailableSlots.Response)
	return resp, args.Error(1)
}

func get(h *Handler, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots"+query, nil))
	return rec
}

func TestHandle(t *testing.T) {
	date := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{Date: date}).Return(&getAvailableSlots.Response{
		Date:           date,
		OpenTime:       "07:30",
		CloseTime:      "17:30",
		MaxPerHalfHour: 1,
		Slots: []getAvailableSlots.Slot{
			{AvailableSlot: domain.AvailableSlot{StartTime: "07:30", DurationMinutes: 30, AvailableSpots: 0, TotalSpots: 1}},
			{AvailableSlot: domain.AvailableSlot{StartTime: "08:00", DurationMinutes: 30, AvailableSpots: 1, TotalSpots: 1}, Available: true},
		},
	}, nil)

	rec := get(NewHandler(uc, logger.NewNop()), "?date=2025-06-02")

	require.Equal(t, http.StatusOK, rec.Code)
	var body AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "2025-06-02", body.Date)
	assert.Equal(t, "07:30", body.OpenTime)
	require.Len(t, body.Slots, 2)
	assert.False(t, body.Slots[0].Available)
	assert.True(t, body.Slots[1].Available)
}

func TestHandle_ClosedDayOmitsHours(t *testing.T) {
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getAvailableSlots.Response{Date: date, Closed: true}, nil)

	rec := get(NewHandler(uc, logger.NewNop()), "?date=2025-06-01")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "openTime")
	assert.Contains(t, rec.Body.String(), `"closed":true`)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get(NewHandler(new(mockUseCase), logger.NewNop()), "").Code)
	assert.Equal(t, http.StatusBadRequest, get(NewHandler(new(mockUseCase), logger.NewNop()), "?date=02-06-2025").Code)

	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getAvailableSlots.ErrUnavailable)
	assert.Equal(t, http.StatusServiceUnavailable, get(NewHandler(uc, logger.NewNop()), "?date=2025-06-02").Code)
}

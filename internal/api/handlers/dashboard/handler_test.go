package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-GroomingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Dashboard(ctx context.Context, date time.Time) (*models.DashboardResponse, error) {
	args := m.Called(ctx, date)
	resp, _ := args.Get(0).(*models.DashboardResponse)
	return resp, args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func TestHandle_DefaultsToTodayInLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// 01:00 UTC 3 июня = 22:00 2 июня по BRT
	now := time.Date(2025, time.June, 3, 1, 0, 0, 0, time.UTC)
	svc := new(mockService)
	svc.On("Dashboard", mock.Anything, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)).
		Return(&models.DashboardResponse{Date: "2025-06-02"}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, fixedTime{now: now}, loc, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_InvalidDate(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(new(mockService), fixedTime{}, time.UTC, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?date=junho", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

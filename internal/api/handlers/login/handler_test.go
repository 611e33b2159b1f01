package login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-GroomingService/internal/service/auth"
	"github.com/m04kA/SMC-GroomingService/internal/service/auth/models"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.LoginResponse)
	return resp, args.Error(1)
}

func post(svc *mockService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	svc := new(mockService)
	svc.On("Login", mock.Anything, &models.LoginRequest{Username: "admin", Password: "secret"}).
		Return(&models.LoginResponse{Token: "tok", ExpiresAt: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)}, nil)

	rec := post(svc, `{"username":"admin","password":"secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"tok"`)
}

func TestHandle_InvalidCredentials(t *testing.T) {
	svc := new(mockService)
	svc.On("Login", mock.Anything, mock.Anything).Return(nil, auth.ErrInvalidCredentials)

	rec := post(svc, `{"username":"admin","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, post(new(mockService), `not json`).Code)
}

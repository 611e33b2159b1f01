package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	catalogService "github.com/m04kA/SMC-GroomingService/internal/service/catalog"
	"github.com/m04kA/SMC-GroomingService/internal/service/catalog/models"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

// mockService покрывает только методы, вызываемые в тестах
type mockService struct {
	mock.Mock
	CatalogService
}

func (m *mockService) ListServices(ctx context.Context, onlyActive bool) (*models.ServiceListResponse, error) {
	args := m.Called(ctx, onlyActive)
	resp, _ := args.Get(0).(*models.ServiceListResponse)
	return resp, args.Error(1)
}

func (m *mockService) CreateBreed(ctx context.Context, req *models.BreedRequest) (*models.BreedResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.BreedResponse)
	return resp, args.Error(1)
}

func (m *mockService) DeletePerk(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockService) GetService(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.ServiceResponse)
	return resp, args.Error(1)
}

func TestListServices_ActiveOnly(t *testing.T) {
	svc := new(mockService)
	svc.On("ListServices", mock.Anything, true).Return(&models.ServiceListResponse{
		Services: []models.ServiceResponse{{ID: 1, Title: "Banho"}},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).ListServices(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services?active=true", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Banho"`)
}

func TestCreateBreed_Duplicate(t *testing.T) {
	svc := new(mockService)
	svc.On("CreateBreed", mock.Anything, &models.BreedRequest{Name: "Poodle"}).Return(nil, catalogService.ErrDuplicate)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).CreateBreed(rec, httptest.NewRequest(http.MethodPost, "/api/v1/breeds",
		strings.NewReader(`{"name":"Poodle"}`)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeletePerk_InUse(t *testing.T) {
	svc := new(mockService)
	svc.On("DeletePerk", mock.Anything, int64(2)).Return(catalogService.ErrInUse)

	rec := httptest.NewRecorder()
	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/", nil), map[string]string{"perkId": "2"})
	NewHandler(svc, logger.NewNop()).DeletePerk(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetService_Errors(t *testing.T) {
	svc := new(mockService)
	svc.On("GetService", mock.Anything, int64(7)).Return(nil, catalogService.ErrNotFound)
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.GetService(rec, mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"serviceId": "7"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.GetService(rec, mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"serviceId": "0"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package normalize_time

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	normalizeTime "github.com/m04kA/SMC-GroomingService/internal/usecase/normalize_time"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *normalizeTime.Request) (*normalizeTime.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*normalizeTime.Response)
	return resp, args.Error(1)
}

func get(uc *mockUseCase, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/schedule/normalize-time"+query, nil))
	return rec
}

func TestHandle(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *normalizeTime.Request) bool {
		return req.Time == "7:10" && req.Date.Day() == 2
	})).Return(&normalizeTime.Response{Time: "07:30"}, nil)

	rec := get(uc, "?date=2025-06-02&time=7:10")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"closed":false,"time":"07:30"}`, rec.Body.String())
}

func TestHandle_Closed(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(&normalizeTime.Response{Closed: true}, nil)

	rec := get(uc, "?date=2025-06-01&time=10:00")

	assert.JSONEq(t, `{"closed":true}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get(new(mockUseCase), "?time=10:00").Code)

	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, normalizeTime.ErrInvalidTime)
	assert.Equal(t, http.StatusUnprocessableEntity, get(uc, "?date=2025-06-02&time=xx").Code)
}

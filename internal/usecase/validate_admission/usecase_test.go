package validate_admission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/scheduling"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

type mockValidator struct {
	mock.Mock
}

func (m *mockValidator) Validate(ctx context.Context, date time.Time, raw string, excludeID *int64) (types.TimeString, *scheduling.Rejection, error) {
	args := m.Called(ctx, date, raw, excludeID)
	rej, _ := args.Get(1).(*scheduling.Rejection)
	return args.Get(0).(types.TimeString), rej, args.Error(2)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) ObserveAdmission(result, reason string) {
	m.Called(result, reason)
}

var monday = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

func TestExecute_Admitted(t *testing.T) {
	v := new(mockValidator)
	m := new(mockMetrics)
	v.On("Validate", mock.Anything, monday, "10h30", (*int64)(nil)).Return(types.TimeString("10:30"), nil, nil)
	m.On("ObserveAdmission", "admitted", "").Once()

	resp, err := NewUseCase(v, m, logger.NewNop()).Execute(context.Background(), &Request{Date: monday, Time: "10h30"})

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, types.TimeString("10:30"), resp.Time)
	m.AssertExpectations(t)
}

func TestExecute_Rejected(t *testing.T) {
	v := new(mockValidator)
	m := new(mockMetrics)
	rej := &scheduling.Rejection{Err: scheduling.ErrSlotUnavailable, Reason: "slot unavailable, choose another time"}
	v.On("Validate", mock.Anything, monday, "10:00", (*int64)(nil)).Return(types.TimeString(""), rej, nil)
	m.On("ObserveAdmission", "rejected", "slot_unavailable").Once()

	resp, err := NewUseCase(v, m, logger.NewNop()).Execute(context.Background(), &Request{Date: monday, Time: "10:00"})

	require.NoError(t, err)
	assert.False(t, resp.OK)
	assert.Equal(t, "slot unavailable, choose another time", resp.Reason)
	m.AssertExpectations(t)
}

func TestExecute_CollaboratorFailure(t *testing.T) {
	v := new(mockValidator)
	m := new(mockMetrics)
	v.On("Validate", mock.Anything, monday, "10:00", (*int64)(nil)).
		Return(types.TimeString(""), nil, errors.New("connection refused"))

	_, err := NewUseCase(v, m, logger.NewNop()).Execute(context.Background(), &Request{Date: monday, Time: "10:00"})

	assert.ErrorIs(t, err, ErrUnavailable)
	m.AssertNotCalled(t, "ObserveAdmission", mock.Anything, mock.Anything)
}

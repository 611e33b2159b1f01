package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/booking"
	petRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/pet"
	"github.com/m04kA/SMC-GroomingService/internal/scheduling"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
	"github.com/m04kA/SMC-GroomingService/pkg/ptr"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

type mockPetRepo struct {
	mock.Mock
}

func (m *mockPetRepo) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Pet)
	return p, args.Error(1)
}

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id int64) (*domain.GroomingService, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*domain.GroomingService)
	return s, args.Error(1)
}

type mockValidator struct {
	mock.Mock
}

func (m *mockValidator) Validate(ctx context.Context, date time.Time, raw string, excludeID *int64) (types.TimeString, *scheduling.Rejection, error) {
	args := m.Called(ctx, date, raw, excludeID)
	rej, _ := args.Get(1).(*scheduling.Rejection)
	return args.Get(0).(types.TimeString), rej, args.Error(2)
}

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopMetrics struct{}

func (nopMetrics) ObserveAdmission(result, reason string) {}

var monday = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

type fixture struct {
	bookings  *mockBookingRepo
	pets      *mockPetRepo
	services  *mockServiceRepo
	validator *mockValidator
	uc        *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookings:  new(mockBookingRepo),
		pets:      new(mockPetRepo),
		services:  new(mockServiceRepo),
		validator: new(mockValidator),
	}
	f.uc = NewUseCase(f.bookings, f.pets, f.services, f.validator, inlineTx{}, nopMetrics{}, logger.NewNop())
	return f
}

func TestExecute_CreatesScheduledBooking(t *testing.T) {
	f := newFixture()
	f.pets.On("GetByID", mock.Anything, int64(3)).Return(&domain.Pet{ID: 3, CustomerID: 7}, nil)
	f.services.On("GetByID", mock.Anything, int64(5)).Return(&domain.GroomingService{ID: 5, Title: "Banho e tosa"}, nil)
	f.validator.On("Validate", mock.Anything, monday, "10h30", (*int64)(nil)).Return(types.TimeString("10:30"), nil, nil)
	f.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.StatusScheduled && b.Time == "10:30" && b.Service == "Banho e tosa"
	})).Return(&domain.Booking{ID: 11, CustomerID: 7, Date: monday, Time: "10:30", Status: domain.StatusScheduled}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 7,
		PetID:      ptr.Ptr(int64(3)),
		ServiceID:  ptr.Ptr(int64(5)),
		Date:       monday,
		Time:       "10h30",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "agendado", resp.Status)
	f.bookings.AssertExpectations(t)
}

func TestExecute_RejectionIsReturnedAsValue(t *testing.T) {
	f := newFixture()
	rej := &scheduling.Rejection{Err: scheduling.ErrSlotUnavailable, Reason: "slot unavailable, choose another time"}
	f.validator.On("Validate", mock.Anything, monday, "10:00", (*int64)(nil)).Return(types.TimeString(""), rej, nil)

	_, err := f.uc.Execute(context.Background(), &Request{CustomerID: 7, Date: monday, Time: "10:00"})

	var got *scheduling.Rejection
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "slot unavailable, choose another time", got.Reason)
	assert.ErrorIs(t, err, scheduling.ErrSlotUnavailable)
	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_ConcurrentInsertIsConflict(t *testing.T) {
	f := newFixture()
	f.validator.On("Validate", mock.Anything, monday, "10:00", (*int64)(nil)).Return(types.TimeString("10:00"), nil, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil, bookingRepo.ErrSlotNotAvailable)

	_, err := f.uc.Execute(context.Background(), &Request{CustomerID: 7, Date: monday, Time: "10:00"})

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_StorageFailureIsRetryable(t *testing.T) {
	f := newFixture()
	f.validator.On("Validate", mock.Anything, monday, "10:00", (*int64)(nil)).
		Return(types.TimeString(""), nil, errors.New("timeout"))

	_, err := f.uc.Execute(context.Background(), &Request{CustomerID: 7, Date: monday, Time: "10:00"})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestExecute_PetOfAnotherCustomer(t *testing.T) {
	f := newFixture()
	f.pets.On("GetByID", mock.Anything, int64(3)).Return(&domain.Pet{ID: 3, CustomerID: 99}, nil)

	_, err := f.uc.Execute(context.Background(), &Request{CustomerID: 7, PetID: ptr.Ptr(int64(3)), Date: monday, Time: "10:00"})

	assert.ErrorIs(t, err, ErrPetNotOwned)
}

func TestExecute_UnknownPet(t *testing.T) {
	f := newFixture()
	f.pets.On("GetByID", mock.Anything, int64(3)).Return(nil, petRepo.ErrPetNotFound)

	_, err := f.uc.Execute(context.Background(), &Request{CustomerID: 7, PetID: ptr.Ptr(int64(3)), Date: monday, Time: "10:00"})

	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestExecute_CancelledSkipsOccupancy(t *testing.T) {
	f := newFixture()
	f.bookings.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Booking{ID: 12, Date: monday, Time: "10:00", Status: domain.StatusCancelled}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 7,
		Date:       monday,
		Time:       "10:00",
		Status:     ptr.Ptr("cancelado"),
	})

	require.NoError(t, err)
	assert.Equal(t, "cancelado", resp.Status)
	f.validator.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{name: "no customer", req: Request{}},
		{name: "bad pet", req: Request{CustomerID: 1, PetID: ptr.Ptr(int64(0))}},
		{name: "unknown status", req: Request{CustomerID: 1, Status: ptr.Ptr("pending")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateRequest(&tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// retryTx повторяет функцию, как txmanager при ошибке сериализации
type retryTx struct{ attempts int }

func (r retryTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for i := 0; i < r.attempts; i++ {
		err = fn(ctx)
	}
	return err
}

type countingMetrics struct {
	decisions []string
}

func (m *countingMetrics) ObserveAdmission(result, reason string) {
	m.decisions = append(m.decisions, result+":"+reason)
}

func TestExecute_AdmissionObservedOncePerRequest(t *testing.T) {
	f := newFixture()
	metrics := &countingMetrics{}
	f.uc = NewUseCase(f.bookings, f.pets, f.services, f.validator, retryTx{attempts: 3}, metrics, logger.NewNop())
	f.validator.On("Validate", mock.Anything, monday, "10:00", (*int64)(nil)).Return(types.TimeString("10:00"), nil, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 1, Date: monday, Time: "10:00", Status: domain.StatusScheduled}, nil)

	_, err := f.uc.Execute(context.Background(), &Request{CustomerID: 7, Date: monday, Time: "10:00"})

	require.NoError(t, err)
	f.validator.AssertNumberOfCalls(t, "Validate", 3)
	assert.Equal(t, []string{"admitted:"}, metrics.decisions)
}

func TestExecute_RejectionObservedWithKind(t *testing.T) {
	f := newFixture()
	metrics := &countingMetrics{}
	f.uc = NewUseCase(f.bookings, f.pets, f.services, f.validator, retryTx{attempts: 2}, metrics, logger.NewNop())
	rej := &scheduling.Rejection{Err: scheduling.ErrSlotUnavailable, Reason: "slot unavailable, choose another time"}
	f.validator.On("Validate", mock.Anything, monday, "10:00", (*int64)(nil)).Return(types.TimeString(""), rej, nil)

	_, err := f.uc.Execute(context.Background(), &Request{CustomerID: 7, Date: monday, Time: "10:00"})

	require.Error(t, err)
	assert.Equal(t, []string{"rejected:" + rej.Kind()}, metrics.decisions)
}

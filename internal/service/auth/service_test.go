package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-GroomingService/internal/infra/sessions"
	"github.com/m04kA/SMC-GroomingService/internal/service/auth/models"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) Create(ctx context.Context, username string) (string, time.Time, error) {
	args := m.Called(ctx, username)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockSessions) Lookup(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *mockSessions) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func newService(t *testing.T, store SessionStore) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewService("admin", string(hash), store, logger.NewNop())
}

func TestLogin_Success(t *testing.T) {
	store := new(mockSessions)
	expires := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	store.On("Create", mock.Anything, "admin").Return("tok", expires, nil)

	resp, err := newService(t, store).Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, expires, resp.ExpiresAt)
	store.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	store := new(mockSessions)

	_, err := newService(t, store).Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "nope"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_WrongUser(t *testing.T) {
	_, err := newService(t, new(mockSessions)).Login(context.Background(), &models.LoginRequest{Username: "root", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	_, err := newService(t, new(mockSessions)).Login(context.Background(), &models.LoginRequest{Username: "admin"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthenticate(t *testing.T) {
	store := new(mockSessions)
	store.On("Lookup", mock.Anything, "good").Return("admin", nil)
	store.On("Lookup", mock.Anything, "gone").Return("", sessions.ErrSessionNotFound)
	store.On("Lookup", mock.Anything, "boom").Return("", errors.New("redis down"))
	svc := newService(t, store)

	user, err := svc.Authenticate(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "admin", user)

	_, err = svc.Authenticate(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Authenticate(context.Background(), "boom")
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

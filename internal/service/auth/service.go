package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-GroomingService/internal/infra/sessions"
	"github.com/m04kA/SMC-GroomingService/internal/service/auth/models"
	"github.com/m04kA/SMC-GroomingService/pkg/validation"
)

// Service проверяет учётные данные администратора и управляет сессиями
type Service struct {
	username     string
	passwordHash []byte
	sessions     SessionStore
	logger       Logger
}

// NewService создает сервис авторизации.
// passwordHash is a bcrypt hash of the admin password.
func NewService(username, passwordHash string, sessions SessionStore, logger Logger) *Service {
	return &Service{
		username:     username,
		passwordHash: []byte(passwordHash),
		sessions:     sessions,
		logger:       logger,
	}
}

// Login проверяет пароль и выдает токен сессии
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	// bcrypt выполняется даже при неверном имени пользователя
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password))
	if !userOK || passErr != nil {
		s.logger.Warn("Login: rejected credentials for username=%q", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.sessions.Create(ctx, s.username)
	if err != nil {
		s.logger.Error("Login: failed to create session: %v", err)
		return nil, fmt.Errorf("%w: Login - create session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: session created for username=%s", s.username)
	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Logout отзывает сессию
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.Error("Logout: failed to delete session: %v", err)
		return fmt.Errorf("%w: Logout - delete session: %v", ErrInternal, err)
	}
	return nil
}

// Authenticate возвращает имя пользователя живой сессии
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	username, err := s.sessions.Lookup(ctx, token)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return "", ErrUnauthorized
		}
		s.logger.Error("Authenticate: session lookup failed: %v", err)
		return "", fmt.Errorf("%w: Authenticate - lookup: %v", ErrInternal, err)
	}
	return username, nil
}

package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "grooming:session:"

var (
	// ErrSessionNotFound сессия не существует или истекла
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrStore ошибка хранилища сессий
	ErrStore = errors.New("sessions: store failure")
)

// Store хранит сессии администраторов в Redis с TTL
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore создает хранилище сессий
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Create issues a new random token bound to username
func (s *Store) Create(ctx context.Context, username string) (string, time.Time, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, keyPrefix+token, username, s.ttl).Err(); err != nil {
		return "", time.Time{}, fmt.Errorf("%w: Create - %v", ErrStore, err)
	}
	return token, time.Now().Add(s.ttl), nil
}

// Lookup returns the username of a live session and extends its TTL
func (s *Store) Lookup(ctx context.Context, token string) (string, error) {
	if _, err := uuid.Parse(token); err != nil {
		return "", ErrSessionNotFound
	}

	username, err := s.rdb.GetEx(ctx, keyPrefix+token, s.ttl).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Lookup - %v", ErrStore, err)
	}
	return username, nil
}

// Delete revokes a session; deleting an unknown token is not an error
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%w: Delete - %v", ErrStore, err)
	}
	return nil
}

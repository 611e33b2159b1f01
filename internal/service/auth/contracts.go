package auth

import (
	"context"
	"time"
)

// SessionStore хранилище сессий администраторов
type SessionStore interface {
	Create(ctx context.Context, username string) (string, time.Time, error)
	Lookup(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

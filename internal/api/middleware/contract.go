package middleware

import (
	"context"
	"time"
)

// Authenticator проверяет токен сессии и возвращает имя пользователя
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// HTTPMetrics сбор метрик HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

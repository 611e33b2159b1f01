package openinghours

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// Repository интерфейс репозитория часов работы
type Repository interface {
	List(ctx context.Context) ([]domain.OpeningHoursRule, error)
	ReplaceAll(ctx context.Context, rules []domain.OpeningHoursRule) error
}

// Cache интерфейс кеша таблицы часов работы
type Cache interface {
	Get(ctx context.Context) ([]domain.OpeningHoursRule, bool, error)
	Set(ctx context.Context, rules []domain.OpeningHoursRule) error
	Invalidate(ctx context.Context) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

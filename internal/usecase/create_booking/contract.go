package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/scheduling"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.GroomingService, error)
}

// AdmissionValidator проверяет допустимость слота; вызывается внутри транзакции
type AdmissionValidator interface {
	Validate(ctx context.Context, date time.Time, raw string, excludeID *int64) (types.TimeString, *scheduling.Rejection, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics фиксирует решения о допуске
type Metrics interface {
	ObserveAdmission(result, reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

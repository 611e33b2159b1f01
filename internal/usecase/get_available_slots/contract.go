package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// BookingLister интерфейс чтения записей на дату
type BookingLister interface {
	ListByDate(ctx context.Context, date time.Time) ([]domain.Booking, error)
}

// ScheduleProvider интерфейс получения часов работы
type ScheduleProvider interface {
	GetSchedule(ctx context.Context) (domain.WeeklySchedule, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

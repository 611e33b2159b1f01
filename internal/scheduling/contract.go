package scheduling

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// BookingLister интерфейс чтения записей на одну дату
type BookingLister interface {
	ListByDate(ctx context.Context, date time.Time) ([]domain.Booking, error)
}

// ScheduleProvider интерфейс получения текущих часов работы
type ScheduleProvider interface {
	GetSchedule(ctx context.Context) (domain.WeeklySchedule, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестируемости)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

// Now возвращает текущее время
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

package normalize_time

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// ScheduleProvider интерфейс получения часов работы
type ScheduleProvider interface {
	GetSchedule(ctx context.Context) (domain.WeeklySchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package validate_admission

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/scheduling"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// AdmissionValidator проверяет допустимость даты и времени записи
type AdmissionValidator interface {
	Validate(ctx context.Context, date time.Time, raw string, excludeID *int64) (types.TimeString, *scheduling.Rejection, error)
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

package dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/service/bookings/models"
)

type BookingService interface {
	Dashboard(ctx context.Context, date time.Time) (*models.DashboardResponse, error)
}

// TimeProvider источник "сегодня", когда дата не указана
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_opening_hours

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/service/openinghours/models"
)

type OpeningHoursService interface {
	Get(ctx context.Context) (*models.OpeningHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

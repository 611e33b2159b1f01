package normalize_time

import (
	"context"

	normalizeTime "github.com/m04kA/SMC-GroomingService/internal/usecase/normalize_time"
)

type NormalizeTimeUseCase interface {
	Execute(ctx context.Context, req *normalizeTime.Request) (*normalizeTime.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

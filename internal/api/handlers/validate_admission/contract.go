package validate_admission

import (
	"context"

	validateAdmission "github.com/m04kA/SMC-GroomingService/internal/usecase/validate_admission"
)

type ValidateAdmissionUseCase interface {
	Execute(ctx context.Context, req *validateAdmission.Request) (*validateAdmission.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package validate_admission

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

const (
	resultAdmitted = "admitted"
	resultRejected = "rejected"
)

// UseCase проверка допуска записи без сохранения
type UseCase struct {
	validator AdmissionValidator
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(validator AdmissionValidator, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		validator: validator,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute возвращает решение о допуске.
// Бизнес-отказ не является ошибкой: он приходит в Response.Reason.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateAdmission: date=%s, time=%q, exclude=%v",
		req.Date.Format(domain.DateFormat), req.Time, req.ExcludeBookingID)

	ts, rej, err := uc.validator.Validate(ctx, req.Date, req.Time, req.ExcludeBookingID)
	if err != nil {
		uc.logger.Error("ValidateAdmission: collaborator failure: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if rej != nil {
		uc.metrics.ObserveAdmission(resultRejected, rej.Kind())
		uc.logger.Warn("ValidateAdmission: rejected: %s", rej.Reason)
		return &Response{OK: false, Reason: rej.Reason}, nil
	}

	uc.metrics.ObserveAdmission(resultAdmitted, "")
	return &Response{OK: true, Time: ts}, nil
}

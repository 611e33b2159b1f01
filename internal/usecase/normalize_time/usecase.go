package normalize_time

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/scheduling"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// UseCase подгоняет введённое время к ближайшему получасу внутри часов работы.
// Используется при вводе в форме; допуск записи выполняет строгую проверку отдельно.
type UseCase struct {
	schedule ScheduleProvider
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(schedule ScheduleProvider, logger Logger) *UseCase {
	return &UseCase{schedule: schedule, logger: logger}
}

// Execute выполняет коррекцию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, ok := types.NormalizeTimeString(req.Time); !ok {
		uc.logger.Warn("NormalizeTime: unparseable time %q", req.Time)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, req.Time)
	}

	schedule, err := uc.schedule.GetSchedule(ctx)
	if err != nil {
		uc.logger.Error("NormalizeTime: failed to get opening hours: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	window := scheduling.ComputeSlotGrid(req.Date, schedule)
	if !window.Open {
		return &Response{Closed: true}, nil
	}

	ts, ok := scheduling.ClampToRange(req.Time, window)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, req.Time)
	}

	uc.logger.Info("NormalizeTime: date=%s, %q -> %s", req.Date.Format(domain.DateFormat), req.Time, ts)
	return &Response{Time: ts}, nil
}

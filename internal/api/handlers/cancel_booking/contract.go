package cancel_booking

import (
	"context"

	updateBooking "github.com/m04kA/SMC-GroomingService/internal/usecase/update_booking"
)

type CancelBookingUseCase interface {
	Cancel(ctx context.Context, bookingID int64) (*updateBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

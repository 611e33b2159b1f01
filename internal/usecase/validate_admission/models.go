package validate_admission

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// Request модель запроса проверки слота
type Request struct {
	Date             time.Time // нулевое значение означает "дата не указана"
	Time             string    // время в свободной форме ("7:30", "07h30")
	ExcludeBookingID *int64    // редактируемая запись не занимает свой слот
}

// Response результат проверки: OK или причина отказа
type Response struct {
	OK     bool
	Reason string
	Time   types.TimeString // нормализованное время, только при OK
}

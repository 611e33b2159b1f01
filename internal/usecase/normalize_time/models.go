package normalize_time

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// Request модель запроса мягкой коррекции времени
type Request struct {
	Date time.Time
	Time string
}

// Response скорректированное время или признак закрытого дня
type Response struct {
	Closed bool
	Time   types.TimeString
}

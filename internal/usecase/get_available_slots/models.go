package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	Date time.Time // Дата для получения слотов (без времени)
}

// Response сетка слотов на дату
type Response struct {
	Date           time.Time
	Closed         bool
	OpenTime       types.TimeString
	CloseTime      types.TimeString
	MaxPerHalfHour int // настроенная ёмкость; допуск пока проверяет одну запись на слот
	Slots          []Slot
}

// Slot слот сетки с отметками для экрана записи
type Slot struct {
	domain.AvailableSlot
	Available bool // Слот можно занять прямо сейчас
	Past      bool // Слот уже начался
}

package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-GroomingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string          `json:"date"`
	Closed         bool            `json:"closed"`
	OpenTime       string          `json:"openTime,omitempty"`
	CloseTime      string          `json:"closeTime,omitempty"`
	MaxPerHalfHour int             `json:"maxPerHalfHour"`
	Slots          []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	AvailableSpots  int    `json:"availableSpots"`
	TotalSpots      int    `json:"totalSpots"`
	Available       bool   `json:"available"`
	Past            bool   `json:"past"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			AvailableSpots:  slot.AvailableSpots,
			TotalSpots:      slot.TotalSpots,
			Available:       slot.Available,
			Past:            slot.Past,
		}
	}

	out := &AvailableSlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		Closed:         resp.Closed,
		MaxPerHalfHour: resp.MaxPerHalfHour,
		Slots:          slots,
	}
	if !resp.Closed {
		out.OpenTime = resp.OpenTime.String()
		out.CloseTime = resp.CloseTime.String()
	}
	return out
}

// ToUseCaseRequest создает запрос use case из query параметра date
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{Date: date}, nil
}

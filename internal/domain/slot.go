package domain

import "github.com/m04kA/SMC-GroomingService/pkg/types"

// SlotWindow is the bookable range of a day. Start and End are both admissible.
type SlotWindow struct {
	Open           bool
	Start          types.TimeString
	End            types.TimeString
	MaxPerHalfHour int
}

// AvailableSlot получасовой слот на дату
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	AvailableSpots  int
	TotalSpots      int
}

// IsFull returns true if the slot has no available spots
func (s *AvailableSlot) IsFull() bool {
	return s.AvailableSpots <= 0
}

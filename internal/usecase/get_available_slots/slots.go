package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/scheduling"
)

// slotCapacity ёмкость слота при допуске: одна активная запись
const slotCapacity = 1

// buildSlots размечает сетку дня занятостью и прошедшим временем
func buildSlots(
	date time.Time,
	window domain.SlotWindow,
	occupancy scheduling.OccupancyIndex,
	now time.Time,
	grace time.Duration,
	loc *time.Location,
) []Slot {
	times := scheduling.SlotTimes(window)
	result := make([]Slot, 0, len(times))

	for _, start := range times {
		slot := Slot{AvailableSlot: domain.AvailableSlot{
			StartTime:       start,
			DurationMinutes: domain.SlotGranularityMinutes,
			AvailableSpots:  slotCapacity,
			TotalSpots:      slotCapacity,
		}}

		if occupancy.Contains(start) {
			slot.AvailableSpots = 0
		}
		slot.Past = scheduling.CheckNotPast(date, start, now, grace, loc) != nil
		slot.Available = !slot.IsFull() && !slot.Past

		result = append(result, slot)
	}

	return result
}

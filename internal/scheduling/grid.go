package scheduling

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// ComputeSlotGrid возвращает окно работы для дня недели даты.
// Нет правила, выходной или правило без корректных часов: день закрыт.
func ComputeSlotGrid(date time.Time, schedule domain.WeeklySchedule) domain.SlotWindow {
	rule, ok := schedule.Rule(date.Weekday())
	if !ok || rule.IsClosed || rule.OpenTime == nil || rule.CloseTime == nil {
		return domain.SlotWindow{}
	}

	start, errStart := rule.OpenTime.Minutes()
	end, errEnd := rule.CloseTime.Minutes()
	if errStart != nil || errEnd != nil || end < start {
		return domain.SlotWindow{}
	}

	capacity := rule.MaxPerHalfHour
	if capacity <= 0 {
		capacity = domain.DefaultMaxPerHalfHour
	}

	return domain.SlotWindow{
		Open:           true,
		Start:          *rule.OpenTime,
		End:            *rule.CloseTime,
		MaxPerHalfHour: capacity,
	}
}

// Bounds возвращает окно в минутах от полуночи
func Bounds(window domain.SlotWindow) (start, end int, ok bool) {
	if !window.Open {
		return 0, 0, false
	}
	start, errStart := window.Start.Minutes()
	end, errEnd := window.End.Minutes()
	if errStart != nil || errEnd != nil {
		return 0, 0, false
	}
	return start, end, true
}

// SlotTimes перечисляет получасовые слоты окна, включая обе границы.
// Невыровненное время открытия сдвигается вперёд до ближайшего получаса.
func SlotTimes(window domain.SlotWindow) []types.TimeString {
	start, end, ok := Bounds(window)
	if !ok {
		return nil
	}

	ts, err := types.NewTimeStringFromMinutes(ceilToSlot(start))
	if err != nil {
		return nil
	}

	slots := make([]types.TimeString, 0, (end-start)/domain.SlotGranularityMinutes+1)
	for !ts.IsAfter(window.End) {
		slots = append(slots, ts)
		// слот 23:30 последний в сутках
		next, err := ts.AddMinutes(domain.SlotGranularityMinutes)
		if err != nil {
			break
		}
		ts = next
	}
	return slots
}

func ceilToSlot(minutes int) int {
	if rem := minutes % domain.SlotGranularityMinutes; rem != 0 {
		return minutes + domain.SlotGranularityMinutes - rem
	}
	return minutes
}

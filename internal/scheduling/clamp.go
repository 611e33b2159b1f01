package scheduling

import (
	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// ClampToRange мягко исправляет ввод: нормализует, округляет до ближайшего получаса,
// прижимает к окну работы и округляет ещё раз. false для неразборчивого ввода
// или закрытого дня.
func ClampToRange(raw string, window domain.SlotWindow) (types.TimeString, bool) {
	ts, ok := types.NormalizeTimeString(raw)
	if !ok {
		return "", false
	}
	start, end, ok := Bounds(window)
	if !ok {
		return "", false
	}

	minutes, _ := ts.Minutes()
	minutes = roundToSlot(minutes)
	if minutes < start {
		minutes = start
	}
	if minutes > end {
		minutes = end
	}
	minutes = roundToSlot(minutes)

	// Округление 23:45 вверх даёт 24:00
	if minutes >= domain.MinutesPerDay {
		minutes -= domain.SlotGranularityMinutes
	}

	result, err := types.NewTimeStringFromMinutes(minutes)
	if err != nil {
		return "", false
	}
	return result, true
}

func roundToSlot(minutes int) int {
	g := domain.SlotGranularityMinutes
	return (minutes + g/2) / g * g
}

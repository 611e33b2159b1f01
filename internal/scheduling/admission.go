package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// Тексты отказов, которые видит администратор
const (
	reasonDateTimeRequired = "date/time required"
	reasonInvalidTime      = "invalid time"
	reasonNotHalfHour      = "must choose a time on the half hour"
	reasonInPast           = "cannot book in the past"
	reasonSlotUnavailable  = "slot unavailable, choose another time"
)

// AdmissionInput входные данные решения о допуске
type AdmissionInput struct {
	Date      time.Time // нулевое значение: дата не передана
	RawTime   string
	Schedule  domain.WeeklySchedule
	Occupancy OccupancyIndex
	Now       time.Time
	Grace     time.Duration
	Location  *time.Location
}

// CheckFormat проверки без обращения к хранилищу:
// наличие даты и времени, разбор и кратность получасу.
func CheckFormat(date time.Time, raw string) (types.TimeString, *Rejection) {
	if date.IsZero() || strings.TrimSpace(raw) == "" {
		return "", reject(ErrDateTimeRequired, reasonDateTimeRequired)
	}
	ts, ok := types.NormalizeTimeString(raw)
	if !ok {
		return "", reject(ErrInvalidTime, reasonInvalidTime)
	}
	if !ts.IsHalfHourAligned() {
		return "", reject(ErrNotHalfHour, reasonNotHalfHour)
	}
	return ts, nil
}

// CheckWindow отклоняет время вне часов работы дня недели
func CheckWindow(date time.Time, ts types.TimeString, schedule domain.WeeklySchedule) *Rejection {
	window := ComputeSlotGrid(date, schedule)
	if _, _, ok := Bounds(window); !ok {
		return reject(ErrClosedDay, closedReason(date.Weekday()))
	}
	if _, err := ts.Minutes(); err != nil {
		return reject(ErrInvalidTime, reasonInvalidTime)
	}
	if ts.IsBefore(window.Start) || ts.IsAfter(window.End) {
		return reject(ErrOutsideHours, hoursReason(date.Weekday(), window))
	}
	return nil
}

// CheckNotPast отклоняет слот, начавшийся раньше now минус grace
func CheckNotPast(date time.Time, ts types.TimeString, now time.Time, grace time.Duration, loc *time.Location) *Rejection {
	at, err := ts.OnDate(date, loc)
	if err != nil {
		return reject(ErrInvalidTime, reasonInvalidTime)
	}
	if at.Before(now.Add(-grace)) {
		return reject(ErrInPast, reasonInPast)
	}
	return nil
}

// CheckOccupancy отклоняет слот, занятый другой активной записью
func CheckOccupancy(ts types.TimeString, occupancy OccupancyIndex) *Rejection {
	if occupancy.Contains(ts) {
		return reject(ErrSlotUnavailable, reasonSlotUnavailable)
	}
	return nil
}

// Admit выполняет проверки по порядку, побеждает первый отказ.
// nil означает, что запись допущена.
func Admit(in AdmissionInput) (types.TimeString, *Rejection) {
	ts, rej := CheckFormat(in.Date, in.RawTime)
	if rej != nil {
		return "", rej
	}
	if rej = CheckWindow(in.Date, ts, in.Schedule); rej != nil {
		return "", rej
	}
	if rej = CheckNotPast(in.Date, ts, in.Now, in.Grace, in.Location); rej != nil {
		return "", rej
	}
	if rej = CheckOccupancy(ts, in.Occupancy); rej != nil {
		return "", rej
	}
	return ts, nil
}

func closedReason(day time.Weekday) string {
	return fmt.Sprintf("closed on %ss", day)
}

func hoursReason(day time.Weekday, window domain.SlotWindow) string {
	label := "weekday"
	switch day {
	case time.Saturday, time.Sunday:
		label = day.String()
	}
	return fmt.Sprintf("%s hours are %s-%s", label, window.Start, window.End)
}

package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	timeLayout     = "15:04"
	minutesPerDay  = 24 * 60
	halfHourMinute = 30
)

var (
	// ErrInvalidTimeFormat возвращается, если строка не похожа на время суток
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, если результат арифметики выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// Допустимые варианты ввода: "7:30", "07:30", "7h30", "07H30", "7.30"
var timeInputPattern = regexp.MustCompile(`^(\d{1,2})\s*[:hH.]\s*(\d{2})$`)

// TimeString is a canonical "HH:MM" time of day.
type TimeString string

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses free-form input and returns the canonical form.
func NewTimeStringFromString(raw string) (TimeString, error) {
	ts, ok := NormalizeTimeString(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
	}
	return ts, nil
}

// NewTimeStringFromMinutes converts minutes since midnight into a TimeString.
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// NormalizeTimeString accepts H:MM, HH:MM and HhMM style input and returns "HH:MM".
// The second return value is false when the input is not a valid 00-23 / 00-59 pair.
func NormalizeTimeString(raw string) (TimeString, bool) {
	m := timeInputPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 0 || hour > 23 {
		return "", false
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute < 0 || minute > 59 {
		return "", false
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), true
}

// NormalizeHalfHour is NormalizeTimeString restricted to minutes 00 and 30.
func NormalizeHalfHour(raw string) (TimeString, bool) {
	ts, ok := NormalizeTimeString(raw)
	if !ok || !ts.IsHalfHourAligned() {
		return "", false
	}
	return ts, true
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return strings.TrimSpace(string(t)) == ""
}

// Validate checks that the value is already in canonical form.
func (t TimeString) Validate() error {
	ts, ok := NormalizeTimeString(string(t))
	if !ok || ts != t {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// Minutes returns minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	ts, ok := NormalizeTimeString(string(t))
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	hour, _ := strconv.Atoi(string(ts[:2]))
	minute, _ := strconv.Atoi(string(ts[3:]))
	return hour*60 + minute, nil
}

// AddMinutes shifts the time, failing if the result leaves the day.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(m + n)
}

// IsHalfHourAligned reports whether minutes are exactly 00 or 30.
func (t TimeString) IsHalfHourAligned() bool {
	m, err := t.Minutes()
	if err != nil {
		return false
	}
	return m%halfHourMinute == 0
}

// IsBefore сравнивает время; невалидные значения никогда не считаются "раньше"
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter сравнивает время; невалидные значения никогда не считаются "позже"
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// OnDate combines the calendar day of date with this time of day in loc.
func (t TimeString) OnDate(date time.Time, loc *time.Location) (time.Time, error) {
	m, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = date.Location()
	}
	y, mo, d := date.Date()
	return time.Date(y, mo, d, m/60, m%60, 0, 0, loc), nil
}

// Scan implements sql.Scanner. Postgres TIME arrives as "HH:MM:SS".
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeFormat, src)
	}
}

func (t *TimeString) scanString(s string) error {
	s = strings.TrimSpace(s)
	if len(s) >= 8 && s[5] == ':' {
		s = s[:5]
	}
	ts, ok := NormalizeTimeString(s)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	*t = ts
	return nil
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

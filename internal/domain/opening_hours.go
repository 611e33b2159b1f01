package domain

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// OpeningHoursRule is the configuration of a single weekday (0=Sunday..6=Saturday)
type OpeningHoursRule struct {
	DOW            int
	IsClosed       bool
	OpenTime       *types.TimeString
	CloseTime      *types.TimeString
	MaxPerHalfHour int
	UpdatedAt      time.Time
}

// Weekday returns the rule's day as time.Weekday
func (r OpeningHoursRule) Weekday() time.Weekday {
	return time.Weekday(r.DOW)
}

// Normalized приводит правило к инварианту: у закрытого дня нет времени и ёмкость 0,
// у открытого дня ёмкость по умолчанию 1
func (r OpeningHoursRule) Normalized() OpeningHoursRule {
	if r.IsClosed {
		r.OpenTime = nil
		r.CloseTime = nil
		r.MaxPerHalfHour = 0
		return r
	}
	if r.MaxPerHalfHour <= 0 {
		r.MaxPerHalfHour = DefaultMaxPerHalfHour
	}
	return r
}

// ClosedRule returns a closed rule for the given weekday
func ClosedRule(dow int) OpeningHoursRule {
	return OpeningHoursRule{DOW: dow, IsClosed: true}
}

// OpenRule returns an open rule for the given weekday with default capacity
func OpenRule(dow int, open, close types.TimeString) OpeningHoursRule {
	return OpeningHoursRule{
		DOW:            dow,
		OpenTime:       &open,
		CloseTime:      &close,
		MaxPerHalfHour: DefaultMaxPerHalfHour,
	}
}

// DefaultOpeningHours returns the seed schedule:
// Mon-Fri 07:30-17:30, Sat 07:30-13:00, Sun closed
func DefaultOpeningHours() []OpeningHoursRule {
	return []OpeningHoursRule{
		ClosedRule(int(time.Sunday)),
		OpenRule(int(time.Monday), DefaultOpenTime, DefaultWeekdayCloseTime),
		OpenRule(int(time.Tuesday), DefaultOpenTime, DefaultWeekdayCloseTime),
		OpenRule(int(time.Wednesday), DefaultOpenTime, DefaultWeekdayCloseTime),
		OpenRule(int(time.Thursday), DefaultOpenTime, DefaultWeekdayCloseTime),
		OpenRule(int(time.Friday), DefaultOpenTime, DefaultWeekdayCloseTime),
		OpenRule(int(time.Saturday), DefaultOpenTime, DefaultSaturdayCloseTime),
	}
}

// WeeklySchedule indexes opening-hours rules by weekday. It may be sparse.
type WeeklySchedule map[time.Weekday]OpeningHoursRule

// NewWeeklySchedule builds a schedule from rules; later duplicates win
func NewWeeklySchedule(rules []OpeningHoursRule) WeeklySchedule {
	schedule := make(WeeklySchedule, len(rules))
	for _, r := range rules {
		if r.DOW < 0 || r.DOW > 6 {
			continue
		}
		schedule[r.Weekday()] = r
	}
	return schedule
}

// Rule returns the rule for the weekday, if configured
func (w WeeklySchedule) Rule(day time.Weekday) (OpeningHoursRule, bool) {
	r, ok := w[day]
	return r, ok
}

// Rules returns all seven days sorted by weekday; missing days come back closed
func (w WeeklySchedule) Rules() []OpeningHoursRule {
	rules := make([]OpeningHoursRule, 0, 7)
	for dow := 0; dow < 7; dow++ {
		if r, ok := w[time.Weekday(dow)]; ok {
			rules = append(rules, r)
			continue
		}
		rules = append(rules, ClosedRule(dow))
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].DOW < rules[j].DOW })
	return rules
}

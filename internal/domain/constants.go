package domain

import "github.com/m04kA/SMC-GroomingService/pkg/types"

// Scheduling constants
const (
	SlotGranularityMinutes  = 30
	DefaultMaxPerHalfHour   = 1
	DefaultPastGraceSeconds = 60
	MinutesPerDay           = 24 * 60
)

// Default opening hours used to seed an empty table
const (
	DefaultOpenTime          types.TimeString = "07:30"
	DefaultWeekdayCloseTime  types.TimeString = "17:30"
	DefaultSaturdayCloseTime types.TimeString = "13:00"
)

// Business validation constants
const (
	MaxNotesLength    = 500
	MaxNameLength     = 120
	MaxPhoneLength    = 32
	MaxPerHalfHourCap = 20
)

// Time format constants
const (
	TimeFormat   = "15:04"      // HH:MM
	DateFormat   = "2006-01-02" // YYYY-MM-DD
	DateFormatBR = "02/01/2006" // DD/MM/YYYY
)

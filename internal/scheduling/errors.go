package scheduling

import "errors"

// Причины отказа в записи, в порядке проверки
var (
	ErrDateTimeRequired = errors.New("scheduling: date/time required")
	ErrInvalidTime      = errors.New("scheduling: invalid time")
	ErrNotHalfHour      = errors.New("scheduling: time is not on the half hour")
	ErrClosedDay        = errors.New("scheduling: closed on this day")
	ErrOutsideHours     = errors.New("scheduling: time outside opening hours")
	ErrInPast           = errors.New("scheduling: time is in the past")
	ErrSlotUnavailable  = errors.New("scheduling: slot unavailable")
)

var rejectionKinds = map[error]string{
	ErrDateTimeRequired: "required",
	ErrInvalidTime:      "invalid_time",
	ErrNotHalfHour:      "not_half_hour",
	ErrClosedDay:        "closed_day",
	ErrOutsideHours:     "outside_hours",
	ErrInPast:           "in_past",
	ErrSlotUnavailable:  "slot_unavailable",
}

// Rejection отказ в записи на (date, time) по бизнес-правилу.
// Reason показывается администратору рядом с формой.
type Rejection struct {
	Err    error
	Reason string
}

func (r *Rejection) Error() string {
	return r.Reason
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

// Kind returns a short label usable as a metric value
func (r *Rejection) Kind() string {
	if r == nil {
		return ""
	}
	if kind, ok := rejectionKinds[r.Err]; ok {
		return kind
	}
	return "unknown"
}

func reject(err error, reason string) *Rejection {
	return &Rejection{Err: err, Reason: reason}
}

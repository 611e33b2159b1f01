package domain

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// Booking represents a grooming appointment
type Booking struct {
	ID         int64
	CustomerID int64
	PetID      *int64
	ServiceID  *int64
	Service    string // legacy free-text service title, kept for old rows
	Date       time.Time
	Time       types.TimeString
	Prize      string // perk ("mimo") label attached to the booking
	Status     BookingStatus
	Notes      string

	LastNotificationAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// BookingsFilter фильтр для списка записей
type BookingsFilter struct {
	StartDate        *time.Time     // Начало периода (включительно)
	EndDate          *time.Time     // Конец периода (включительно)
	CustomerID       *int64         // Только записи клиента
	Status           *BookingStatus // Конкретный статус
	IncludeCancelled bool           // Включать отменённые записи
}

// IsSingleDay сообщает, что фильтр ограничен одной датой
func (f BookingsFilter) IsSingleDay() bool {
	return f.StartDate != nil && f.EndDate != nil && f.StartDate.Equal(*f.EndDate)
}

// StatusCount количество записей в статусе
type StatusCount struct {
	Status BookingStatus
	Count  int
}

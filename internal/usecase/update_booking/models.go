package update_booking

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/service/bookings/models"
)

// Request полный набор полей редактируемой записи
type Request struct {
	ID             int64
	CustomerID     int64
	PetID          *int64
	ServiceID      *int64
	Service        string
	Date           time.Time
	Time           string
	Prize          string
	Status         string
	PreviousStatus *string // статус на момент открытия формы; nil - статус из БД
	Notes          string
}

// Notification сообщение клиенту, которое оператор отправляет вручную
type Notification struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Response сохранённая запись и, при смене статуса, текст уведомления
type Response struct {
	Booking        models.BookingResponse
	PreviousStatus string
	Notification   *Notification
}

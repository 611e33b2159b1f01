package update_booking

import (
	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingService/internal/service/bookings/models"
	updateBooking "github.com/m04kA/SMC-GroomingService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	CustomerID     int64   `json:"customerId"`
	PetID          *int64  `json:"petId,omitempty"`
	ServiceID      *int64  `json:"serviceId,omitempty"`
	Service        string  `json:"service,omitempty"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Prize          string  `json:"prize,omitempty"`
	Status         string  `json:"status"`
	PreviousStatus *string `json:"previousStatus,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

// UpdateBookingResponse сохранённая запись и текст уведомления для ручной отправки
type UpdateBookingResponse struct {
	Booking        models.BookingResponse      `json:"booking"`
	PreviousStatus string                      `json:"previousStatus"`
	Notification   *updateBooking.Notification `json:"notification,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(id int64) (*updateBooking.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &updateBooking.Request{
		ID:             id,
		CustomerID:     r.CustomerID,
		PetID:          r.PetID,
		ServiceID:      r.ServiceID,
		Service:        r.Service,
		Date:           date,
		Time:           r.Time,
		Prize:          r.Prize,
		Status:         r.Status,
		PreviousStatus: r.PreviousStatus,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *UpdateBookingResponse {
	return &UpdateBookingResponse{
		Booking:        resp.Booking,
		PreviousStatus: resp.PreviousStatus,
		Notification:   resp.Notification,
	}
}

package create_booking

import (
	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-GroomingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID int64   `json:"customerId"`
	PetID      *int64  `json:"petId,omitempty"`
	ServiceID  *int64  `json:"serviceId,omitempty"`
	Service    string  `json:"service,omitempty"`
	Date       string  `json:"date"` // "2025-06-02"
	Time       string  `json:"time"` // "10:00", "10h00"
	Prize      string  `json:"prize,omitempty"`
	Status     *string `json:"status,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Пустая дата допустима: её отвергнет проверка допуска с понятной причиной.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID: r.CustomerID,
		PetID:      r.PetID,
		ServiceID:  r.ServiceID,
		Service:    r.Service,
		Date:       date,
		Time:       r.Time,
		Prize:      r.Prize,
		Status:     r.Status,
		Notes:      r.Notes,
	}, nil
}

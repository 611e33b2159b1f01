package models

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// Request модели

// ListBookingsRequest фильтр списка записей
type ListBookingsRequest struct {
	StartDate        *time.Time
	EndDate          *time.Time
	CustomerID       *int64
	Status           *string
	IncludeCancelled bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		CustomerID:       r.CustomerID,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными записи
type BookingResponse struct {
	ID                 int64      `json:"id"`
	CustomerID         int64      `json:"customerId"`
	PetID              *int64     `json:"petId,omitempty"`
	ServiceID          *int64     `json:"serviceId,omitempty"`
	Service            string     `json:"service,omitempty"`
	Date               string     `json:"date"` // "2025-06-02"
	Time               string     `json:"time"` // "10:00"
	Prize              string     `json:"prize,omitempty"`
	Status             string     `json:"status"`
	StatusLabel        string     `json:"statusLabel"`
	Notes              string     `json:"notes,omitempty"`
	LastNotificationAt *time.Time `json:"lastNotificationAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// BookingListResponse ответ со списком записей
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StatusCountResponse количество записей в статусе
type StatusCountResponse struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

// DashboardResponse сводка за день
type DashboardResponse struct {
	Date           string                `json:"date"`
	TotalBookings  int                   `json:"totalBookings"`
	ActiveBookings int                   `json:"activeBookings"`
	ByStatus       []StatusCountResponse `json:"byStatus"`
	CustomersCount int                   `json:"customersCount"`
	PetsCount      int                   `json:"petsCount"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		PetID:              b.PetID,
		ServiceID:          b.ServiceID,
		Service:            b.Service,
		Date:               b.Date.Format(domain.DateFormat),
		Time:               b.Time.String(),
		Prize:              b.Prize,
		Status:             b.Status.String(),
		StatusLabel:        b.Status.Label(),
		Notes:              b.Notes,
		LastNotificationAt: b.LastNotificationAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainDashboard конвертирует сводку в DTO; статусы без записей отдаются с нулём
func FromDomainDashboard(d *domain.Dashboard) *DashboardResponse {
	counts := make(map[domain.BookingStatus]int, len(d.ByStatus))
	for _, c := range d.ByStatus {
		counts[c.Status] = c.Count
	}

	resp := &DashboardResponse{
		Date:           d.Date.Format(domain.DateFormat),
		TotalBookings:  d.TotalBookings,
		ByStatus:       make([]StatusCountResponse, 0, len(domain.AllStatuses)),
		CustomersCount: d.CustomersCount,
		PetsCount:      d.PetsCount,
	}
	for _, s := range domain.AllStatuses {
		resp.ByStatus = append(resp.ByStatus, StatusCountResponse{Status: s.String(), Label: s.Label(), Count: counts[s]})
		if s.IsActive() {
			resp.ActiveBookings += counts[s]
		}
	}
	return resp
}

package bookings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/infra/export"
	bookingRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-GroomingService/internal/service/bookings/models"
)

// Service сервис чтения записей: списки, история клиента, сводка и выгрузка
type Service struct {
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
	petRepo      PetRepository
	serviceRepo  ServiceRepository
	exporter     Exporter
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	petRepo PetRepository,
	serviceRepo ServiceRepository,
	exporter Exporter,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		petRepo:      petRepo,
		serviceRepo:  serviceRepo,
		exporter:     exporter,
		logger:       logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает записи с фильтрацией по периоду и статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: 'to' is before 'from'", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetCustomerBookings возвращает историю записей клиента, включая отменённые
func (s *Service) GetCustomerBookings(ctx context.Context, customerID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d", customerID)

	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetCustomerBookings: customer lookup failed: %v", err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - customer lookup: %w", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		CustomerID:       &customerID,
		IncludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Dashboard считает записи на дату по статусам и общее число клиентов и питомцев
func (s *Service) Dashboard(ctx context.Context, date time.Time) (*models.DashboardResponse, error) {
	s.logger.Info("Dashboard: building for date=%s", date.Format(domain.DateFormat))

	counts, err := s.bookingRepo.CountByStatus(ctx, date)
	if err != nil {
		s.logger.Error("Dashboard: count bookings failed: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - count bookings: %w", ErrInternal, err)
	}
	customers, err := s.customerRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Dashboard: count customers failed: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - count customers: %w", ErrInternal, err)
	}
	pets, err := s.petRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Dashboard: count pets failed: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - count pets: %w", ErrInternal, err)
	}

	dashboard := &domain.Dashboard{
		Date:           date,
		ByStatus:       counts,
		CustomersCount: customers,
		PetsCount:      pets,
	}
	for _, c := range counts {
		dashboard.TotalBookings += c.Count
	}

	return models.FromDomainDashboard(dashboard), nil
}

// ExportContentType returns the MIME type of Export output
func (s *Service) ExportContentType() string {
	return s.exporter.ContentType()
}

// Export пишет записи за период (включая отменённые) в w
func (s *Service) Export(ctx context.Context, from, to time.Time, w io.Writer) error {
	s.logger.Info("Export: period %s..%s", from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	if to.Before(from) {
		return fmt.Errorf("%w: 'to' is before 'from'", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		StartDate:        &from,
		EndDate:          &to,
		IncludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("Export: repository error: %v", err)
		return fmt.Errorf("%w: Export - repository error: %w", ErrInternal, err)
	}

	rows, err := s.exportRows(ctx, bookings)
	if err != nil {
		return err
	}

	if err := s.exporter.Write(w, rows); err != nil {
		s.logger.Error("Export: write failed: %v", err)
		return fmt.Errorf("%w: Export - write: %w", ErrInternal, err)
	}
	return nil
}

// exportRows подставляет имена клиентов, питомцев и услуг, кешируя повторные обращения
func (s *Service) exportRows(ctx context.Context, bookings []*domain.Booking) ([]export.BookingRow, error) {
	customers := make(map[int64]*domain.Customer)
	pets := make(map[int64]*domain.Pet)
	services := make(map[int64]*domain.GroomingService)

	rows := make([]export.BookingRow, 0, len(bookings))
	for _, b := range bookings {
		row := export.BookingRow{
			ID:      b.ID,
			Date:    b.Date.Format(domain.DateFormatBR),
			Time:    b.Time.String(),
			Service: b.Service,
			Prize:   b.Prize,
			Status:  b.Status.Label(),
			Notes:   b.Notes,
		}

		customer, ok := customers[b.CustomerID]
		if !ok {
			c, err := s.customerRepo.GetByID(ctx, b.CustomerID)
			if err != nil && !errors.Is(err, customerRepo.ErrCustomerNotFound) {
				return nil, fmt.Errorf("%w: Export - customer lookup: %w", ErrInternal, err)
			}
			customer = c
			customers[b.CustomerID] = c
		}
		if customer != nil {
			row.Customer = customer.Name
			row.Phone = customer.Phone
		}

		if b.PetID != nil {
			pet, ok := pets[*b.PetID]
			if !ok {
				pet, _ = s.petRepo.GetByID(ctx, *b.PetID)
				pets[*b.PetID] = pet
			}
			row.Pet = pet.Label()
		}

		if b.ServiceID != nil {
			svc, ok := services[*b.ServiceID]
			if !ok {
				svc, _ = s.serviceRepo.GetByID(ctx, *b.ServiceID)
				services[*b.ServiceID] = svc
			}
			if svc != nil {
				row.Service = svc.Title
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

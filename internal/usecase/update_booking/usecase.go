package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/catalog"
	petRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/pet"
	"github.com/m04kA/SMC-GroomingService/internal/notification"
	"github.com/m04kA/SMC-GroomingService/internal/scheduling"
	"github.com/m04kA/SMC-GroomingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-GroomingService/pkg/ptr"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// UseCase сохранение существующей записи и смена её статуса
type UseCase struct {
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
	petRepo      PetRepository
	serviceRepo  ServiceRepository
	validator    AdmissionValidator
	txManager    TransactionManager
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	petRepo PetRepository,
	serviceRepo ServiceRepository,
	validator AdmissionValidator,
	txManager TransactionManager,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		petRepo:      petRepo,
		serviceRepo:  serviceRepo,
		validator:    validator,
		txManager:    txManager,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute сохраняет запись.
// Допуск повторяется, если запись переносится или отменённая запись снова становится активной.
// Если статус отличается от исходного, ставится lastNotificationAt и формируется текст уведомления.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d, date=%s, time=%q, status=%q",
		req.ID, req.Date.Format(domain.DateFormat), req.Time, req.Status)

	// 1. Валидация входных данных
	status, previousOverride, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем питомца и денормализуем услугу
	if req.PetID != nil {
		if err := uc.checkPet(ctx, *req.PetID, req.CustomerID); err != nil {
			return nil, err
		}
	}
	serviceTitle, err := uc.resolveServiceTitle(ctx, req)
	if err != nil {
		return nil, err
	}

	var (
		result   *domain.Booking
		previous domain.BookingStatus
		decided  bool
	)

	// 3. Загрузка с блокировкой, допуск и сохранение в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.bookingRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.ID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrUnavailable, err)
		}

		previous = current.Status
		if previousOverride != nil {
			previous = *previousOverride
		}

		var ts types.TimeString
		ts, decided, err = uc.admit(txCtx, req, current, status)
		if err != nil {
			return err
		}

		updated := &domain.Booking{
			ID:                 current.ID,
			CustomerID:         req.CustomerID,
			PetID:              req.PetID,
			ServiceID:          req.ServiceID,
			Service:            serviceTitle,
			Date:               req.Date,
			Time:               ts,
			Prize:              req.Prize,
			Status:             status,
			Notes:              req.Notes,
			LastNotificationAt: current.LastNotificationAt,
			CreatedAt:          current.CreatedAt,
		}
		if status != previous {
			updated.LastNotificationAt = ptr.Ptr(uc.timeProvider.Now())
		}

		saved, err := uc.bookingRepo.Update(txCtx, updated)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
				uc.logger.Warn("UpdateBooking: slot %s %s taken concurrently", req.Date.Format(domain.DateFormat), ts)
				return ErrSlotConflict
			case errors.Is(err, bookingRepo.ErrReferenceNotFound):
				uc.logger.Warn("UpdateBooking: reference not found: %v", err)
				return ErrReferenceNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		result = saved
		return nil
	})

	// Решение о допуске учитываем один раз, даже если транзакция повторялась
	if decided {
		observeAdmission(uc.metrics, err)
	}
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Booking:        *models.FromDomainBooking(result),
		PreviousStatus: previous.String(),
	}

	// 4. Уведомление только при смене статуса; отправка остаётся за оператором
	if result.Status != previous {
		uc.metrics.ObserveStatusTransition(previous.String(), result.Status.String())
		resp.Notification = &Notification{
			Status:  result.Status.String(),
			Message: notification.BuildMessage(result.Status, uc.messageContext(ctx, result)),
		}
		uc.logger.Info("UpdateBooking: booking id=%d status %s -> %s", result.ID, previous, result.Status)
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)
	return resp, nil
}

// Cancel переводит запись в "cancelado" тем же путём, что и редактирование
func (uc *UseCase) Cancel(ctx context.Context, id int64) (*Response, error) {
	current, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrUnavailable, err)
	}

	return uc.Execute(ctx, &Request{
		ID:             current.ID,
		CustomerID:     current.CustomerID,
		PetID:          current.PetID,
		ServiceID:      current.ServiceID,
		Service:        current.Service,
		Date:           current.Date,
		Time:           current.Time.String(),
		Prize:          current.Prize,
		Status:         domain.StatusCancelled.String(),
		PreviousStatus: ptr.Ptr(current.Status.String()),
		Notes:          current.Notes,
	})
}

// admit returns the time to store and whether a full admission decision was made.
// Moving the slot or reactivating a cancelled booking runs the full admission check
// with the booking itself excluded from occupancy.
func (uc *UseCase) admit(txCtx context.Context, req *Request, current *domain.Booking, status domain.BookingStatus) (types.TimeString, bool, error) {
	moved := slotChanged(current, req.Date, req.Time)
	reactivated := status.IsActive() && !current.Status.IsActive()

	if status.IsActive() && (moved || reactivated) {
		ts, rej, err := uc.validator.Validate(txCtx, req.Date, req.Time, &current.ID)
		if err != nil {
			uc.logger.Error("UpdateBooking: admission collaborator failure: %v", err)
			return "", false, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		if rej != nil {
			uc.logger.Warn("UpdateBooking: admission rejected: %s", rej.Reason)
			return "", true, rej
		}
		return ts, true, nil
	}

	if moved {
		ts, rej := scheduling.CheckFormat(req.Date, req.Time)
		if rej != nil {
			return "", false, rej
		}
		return ts, false, nil
	}

	return current.Time, false, nil
}

// observeAdmission пишет метрику решения: отказ с причиной или допуск
func observeAdmission(m Metrics, err error) {
	var rej *scheduling.Rejection
	if errors.As(err, &rej) {
		m.ObserveAdmission("rejected", rej.Kind())
		return
	}
	m.ObserveAdmission("admitted", "")
}

// messageContext собирает поля уведомления; недоступные справочники заменяются значениями по умолчанию
func (uc *UseCase) messageContext(ctx context.Context, b *domain.Booking) notification.MessageContext {
	msgCtx := notification.MessageContext{
		ServiceTitle: b.Service,
		DateBR:       b.Date.Format(domain.DateFormatBR),
		Time:         b.Time.String(),
		PrizeLabel:   b.Prize,
	}

	if customer, err := uc.customerRepo.GetByID(ctx, b.CustomerID); err == nil {
		msgCtx.CustomerName = customer.Name
	} else {
		uc.logger.Warn("UpdateBooking: customer id=%d for message: %v", b.CustomerID, err)
	}

	if b.PetID != nil {
		if pet, err := uc.petRepo.GetByID(ctx, *b.PetID); err == nil {
			msgCtx.PetLabel = pet.Label()
		} else {
			uc.logger.Warn("UpdateBooking: pet id=%d for message: %v", *b.PetID, err)
		}
	}

	return msgCtx
}

func (uc *UseCase) checkPet(ctx context.Context, petID, customerID int64) error {
	pet, err := uc.petRepo.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, petRepo.ErrPetNotFound) {
			uc.logger.Warn("UpdateBooking: pet id=%d not found", petID)
			return ErrPetNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get pet id=%d: %v", petID, err)
		return fmt.Errorf("%w: failed to get pet: %v", ErrUnavailable, err)
	}
	if pet.CustomerID != customerID {
		uc.logger.Warn("UpdateBooking: pet id=%d belongs to customer id=%d, not %d", petID, pet.CustomerID, customerID)
		return ErrPetNotOwned
	}
	return nil
}

// resolveServiceTitle проверяет услугу по ID; текст из формы имеет приоритет над названием из каталога
func (uc *UseCase) resolveServiceTitle(ctx context.Context, req *Request) (string, error) {
	if req.ServiceID == nil {
		return req.Service, nil
	}
	service, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			uc.logger.Warn("UpdateBooking: service id=%d not found", *req.ServiceID)
			return "", ErrServiceNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get service id=%d: %v", *req.ServiceID, err)
		return "", fmt.Errorf("%w: failed to get service: %v", ErrUnavailable, err)
	}
	if req.Service != "" {
		return req.Service, nil
	}
	return service.Title, nil
}

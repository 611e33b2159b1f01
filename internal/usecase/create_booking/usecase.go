package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/catalog"
	petRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/pet"
	"github.com/m04kA/SMC-GroomingService/internal/scheduling"
	"github.com/m04kA/SMC-GroomingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// UseCase use case для создания записи
type UseCase struct {
	bookingRepo BookingRepository
	petRepo     PetRepository
	serviceRepo ServiceRepository
	validator   AdmissionValidator
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	petRepo PetRepository,
	serviceRepo ServiceRepository,
	validator AdmissionValidator,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		petRepo:     petRepo,
		serviceRepo: serviceRepo,
		validator:   validator,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case создания записи.
// Допуск повторяется внутри сериализуемой транзакции, записи дня читаются FOR UPDATE.
// Отказ допуска возвращается как *scheduling.Rejection.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("CreateBooking: customer=%d, pet=%v, service=%v, date=%s, time=%q",
		req.CustomerID, req.PetID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем питомца
	if req.PetID != nil {
		if err := uc.checkPet(ctx, *req.PetID, req.CustomerID); err != nil {
			return nil, err
		}
	}

	// 3. Денормализуем название услуги
	serviceTitle, err := uc.resolveServiceTitle(ctx, req)
	if err != nil {
		return nil, err
	}

	var (
		result  *domain.Booking
		decided bool
	)

	// 4. Допуск и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var (
			ts  types.TimeString
			err error
		)
		ts, decided, err = uc.admit(txCtx, req, status)
		if err != nil {
			return err
		}

		booking := &domain.Booking{
			CustomerID: req.CustomerID,
			PetID:      req.PetID,
			ServiceID:  req.ServiceID,
			Service:    serviceTitle,
			Date:       req.Date,
			Time:       ts,
			Prize:      req.Prize,
			Status:     status,
			Notes:      req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
				uc.logger.Warn("CreateBooking: slot %s %s taken concurrently", req.Date.Format(domain.DateFormat), ts)
				return ErrSlotConflict
			case errors.Is(err, bookingRepo.ErrReferenceNotFound):
				uc.logger.Warn("CreateBooking: reference not found: %v", err)
				return ErrReferenceNotFound
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	// Решение о допуске учитываем один раз, даже если транзакция повторялась
	if decided {
		observeAdmission(uc.metrics, err)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return models.FromDomainBooking(result), nil
}

// admit runs the admission check and reports whether a full decision was made.
// A cancelled booking holds no slot, so only its format is checked.
func (uc *UseCase) admit(txCtx context.Context, req *Request, status domain.BookingStatus) (types.TimeString, bool, error) {
	if !status.IsActive() {
		ts, rej := scheduling.CheckFormat(req.Date, req.Time)
		if rej != nil {
			return "", false, rej
		}
		return ts, false, nil
	}

	ts, rej, err := uc.validator.Validate(txCtx, req.Date, req.Time, nil)
	if err != nil {
		uc.logger.Error("CreateBooking: admission collaborator failure: %v", err)
		return "", false, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if rej != nil {
		uc.logger.Warn("CreateBooking: admission rejected: %s", rej.Reason)
		return "", true, rej
	}
	return ts, true, nil
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

func (uc *UseCase) checkPet(ctx context.Context, petID, customerID int64) error {
	pet, err := uc.petRepo.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, petRepo.ErrPetNotFound) {
			uc.logger.Warn("CreateBooking: pet id=%d not found", petID)
			return ErrPetNotFound
		}
		uc.logger.Error("CreateBooking: failed to get pet id=%d: %v", petID, err)
		return fmt.Errorf("%w: failed to get pet: %v", ErrUnavailable, err)
	}
	if pet.CustomerID != customerID {
		uc.logger.Warn("CreateBooking: pet id=%d belongs to customer id=%d, not %d", petID, pet.CustomerID, customerID)
		return ErrPetNotOwned
	}
	return nil
}

func (uc *UseCase) resolveServiceTitle(ctx context.Context, req *Request) (string, error) {
	if req.ServiceID == nil {
		return req.Service, nil
	}
	service, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", *req.ServiceID)
			return "", ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", *req.ServiceID, err)
		return "", fmt.Errorf("%w: failed to get service: %v", ErrUnavailable, err)
	}
	if req.Service != "" {
		return req.Service, nil
	}
	return service.Title, nil
}

package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	customerRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-GroomingService/internal/service/customers/models"
	"github.com/m04kA/SMC-GroomingService/pkg/validation"
)

// Service сервис клиентов
type Service struct {
	repo   CustomerRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(repo CustomerRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create создает клиента
func (s *Service) Create(ctx context.Context, req *models.CustomerRequest) (*models.CustomerResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, req.ToDomain(0))
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Create: created customer id=%d", created.ID)
	return models.FromDomainCustomer(created), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", err)
	}
	return models.FromDomainCustomer(c), nil
}

// List возвращает клиентов с поиском по имени или телефону
func (s *Service) List(ctx context.Context, search string) (*models.CustomerListResponse, error) {
	list, err := s.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, s.mapError("List", err)
	}
	return models.FromDomainCustomerList(list), nil
}

// Update обновляет клиента
func (s *Service) Update(ctx context.Context, id int64, req *models.CustomerRequest) (*models.CustomerResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.repo.Update(ctx, req.ToDomain(id))
	if err != nil {
		return nil, s.mapError("Update", err)
	}

	s.logger.Info("Update: updated customer id=%d", id)
	return models.FromDomainCustomer(updated), nil
}

// Delete удаляет клиента без питомцев и записей
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", err)
	}
	s.logger.Info("Delete: deleted customer id=%d", id)
	return nil
}

func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, customerRepo.ErrCustomerNotFound):
		return ErrCustomerNotFound
	case errors.Is(err, customerRepo.ErrCustomerInUse):
		s.logger.Warn("%s: customer is referenced: %v", op, err)
		return ErrCustomerInUse
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
}

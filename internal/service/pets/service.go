package pets

import (
	"context"
	"errors"
	"fmt"

	petRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/pet"
	"github.com/m04kA/SMC-GroomingService/internal/service/pets/models"
	"github.com/m04kA/SMC-GroomingService/pkg/validation"
)

// Service сервис питомцев
type Service struct {
	repo   PetRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса питомцев
func NewService(repo PetRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create создает питомца у существующего клиента
func (s *Service) Create(ctx context.Context, req *models.PetRequest) (*models.PetResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, req.ToDomain(0))
	if err != nil {
		return nil, s.mapError("Create", err)
	}

	s.logger.Info("Create: created pet id=%d for customer=%d", created.ID, created.CustomerID)
	return models.FromDomainPet(created), nil
}

// GetByID получает питомца по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PetResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", err)
	}
	return models.FromDomainPet(p), nil
}

// List возвращает питомцев, опционально одного клиента
func (s *Service) List(ctx context.Context, customerID *int64) (*models.PetListResponse, error) {
	list, err := s.repo.List(ctx, customerID)
	if err != nil {
		return nil, s.mapError("List", err)
	}
	return models.FromDomainPetList(list), nil
}

// Update обновляет питомца
func (s *Service) Update(ctx context.Context, id int64, req *models.PetRequest) (*models.PetResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.repo.Update(ctx, req.ToDomain(id))
	if err != nil {
		return nil, s.mapError("Update", err)
	}
	return models.FromDomainPet(updated), nil
}

// Delete удаляет питомца без записей
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", err)
	}
	s.logger.Info("Delete: deleted pet id=%d", id)
	return nil
}

func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, petRepo.ErrPetNotFound):
		return ErrPetNotFound
	case errors.Is(err, petRepo.ErrReferenceNotFound):
		s.logger.Warn("%s: owner or breed missing: %v", op, err)
		return ErrOwnerNotFound
	case errors.Is(err, petRepo.ErrPetInUse):
		s.logger.Warn("%s: pet is referenced: %v", op, err)
		return ErrPetInUse
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
}

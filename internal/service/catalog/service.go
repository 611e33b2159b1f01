package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-GroomingService/internal/service/catalog/models"
	"github.com/m04kA/SMC-GroomingService/pkg/validation"
)

// Service сервис справочников: услуги, мимо, породы
type Service struct {
	services ServiceRepository
	perks    PerkRepository
	breeds   BreedRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(services ServiceRepository, perks PerkRepository, breeds BreedRepository, logger Logger) *Service {
	return &Service{services: services, perks: perks, breeds: breeds, logger: logger}
}

// Услуги

// CreateService создает услугу
func (s *Service) CreateService(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	created, err := s.services.Create(ctx, req.ToDomain(0))
	if err != nil {
		return nil, s.mapError("CreateService", err)
	}
	s.logger.Info("CreateService: created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// GetService получает услугу по ID
func (s *Service) GetService(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetService", err)
	}
	return models.FromDomainService(svc), nil
}

// ListServices возвращает услуги
func (s *Service) ListServices(ctx context.Context, onlyActive bool) (*models.ServiceListResponse, error) {
	list, err := s.services.List(ctx, onlyActive)
	if err != nil {
		return nil, s.mapError("ListServices", err)
	}
	resp := &models.ServiceListResponse{Services: make([]models.ServiceResponse, 0, len(list))}
	for _, svc := range list {
		resp.Services = append(resp.Services, *models.FromDomainService(svc))
	}
	return resp, nil
}

// UpdateService обновляет услугу
func (s *Service) UpdateService(ctx context.Context, id int64, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	updated, err := s.services.Update(ctx, req.ToDomain(id))
	if err != nil {
		return nil, s.mapError("UpdateService", err)
	}
	return models.FromDomainService(updated), nil
}

// DeleteService удаляет услугу
func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if err := s.services.Delete(ctx, id); err != nil {
		return s.mapError("DeleteService", err)
	}
	return nil
}

// Мимо

// CreatePerk создает мимо
func (s *Service) CreatePerk(ctx context.Context, req *models.PerkRequest) (*models.PerkResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	created, err := s.perks.Create(ctx, req.ToDomain(0))
	if err != nil {
		return nil, s.mapError("CreatePerk", err)
	}
	s.logger.Info("CreatePerk: created perk id=%d", created.ID)
	return models.FromDomainPerk(created), nil
}

// GetPerk получает мимо по ID
func (s *Service) GetPerk(ctx context.Context, id int64) (*models.PerkResponse, error) {
	p, err := s.perks.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetPerk", err)
	}
	return models.FromDomainPerk(p), nil
}

// ListPerks возвращает мимо
func (s *Service) ListPerks(ctx context.Context, onlyActive bool) (*models.PerkListResponse, error) {
	list, err := s.perks.List(ctx, onlyActive)
	if err != nil {
		return nil, s.mapError("ListPerks", err)
	}
	resp := &models.PerkListResponse{Perks: make([]models.PerkResponse, 0, len(list))}
	for _, p := range list {
		resp.Perks = append(resp.Perks, *models.FromDomainPerk(p))
	}
	return resp, nil
}

// UpdatePerk обновляет мимо
func (s *Service) UpdatePerk(ctx context.Context, id int64, req *models.PerkRequest) (*models.PerkResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	updated, err := s.perks.Update(ctx, req.ToDomain(id))
	if err != nil {
		return nil, s.mapError("UpdatePerk", err)
	}
	return models.FromDomainPerk(updated), nil
}

// DeletePerk удаляет мимо
func (s *Service) DeletePerk(ctx context.Context, id int64) error {
	if err := s.perks.Delete(ctx, id); err != nil {
		return s.mapError("DeletePerk", err)
	}
	return nil
}

// Породы

// CreateBreed создает породу
func (s *Service) CreateBreed(ctx context.Context, req *models.BreedRequest) (*models.BreedResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	created, err := s.breeds.Create(ctx, &domain.DogBreed{Name: strings.TrimSpace(req.Name)})
	if err != nil {
		return nil, s.mapError("CreateBreed", err)
	}
	return models.FromDomainBreed(created), nil
}

// GetBreed получает породу по ID
func (s *Service) GetBreed(ctx context.Context, id int64) (*models.BreedResponse, error) {
	b, err := s.breeds.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetBreed", err)
	}
	return models.FromDomainBreed(b), nil
}

// ListBreeds возвращает породы
func (s *Service) ListBreeds(ctx context.Context) (*models.BreedListResponse, error) {
	list, err := s.breeds.List(ctx)
	if err != nil {
		return nil, s.mapError("ListBreeds", err)
	}
	resp := &models.BreedListResponse{Breeds: make([]models.BreedResponse, 0, len(list))}
	for _, b := range list {
		resp.Breeds = append(resp.Breeds, *models.FromDomainBreed(b))
	}
	return resp, nil
}

// UpdateBreed переименовывает породу
func (s *Service) UpdateBreed(ctx context.Context, id int64, req *models.BreedRequest) (*models.BreedResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	updated, err := s.breeds.Update(ctx, &domain.DogBreed{ID: id, Name: strings.TrimSpace(req.Name)})
	if err != nil {
		return nil, s.mapError("UpdateBreed", err)
	}
	return models.FromDomainBreed(updated), nil
}

// DeleteBreed удаляет породу
func (s *Service) DeleteBreed(ctx context.Context, id int64) error {
	if err := s.breeds.Delete(ctx, id); err != nil {
		return s.mapError("DeleteBreed", err)
	}
	return nil
}

func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, catalogRepo.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, catalogRepo.ErrInUse):
		s.logger.Warn("%s: item in use: %v", op, err)
		return ErrInUse
	case errors.Is(err, catalogRepo.ErrDuplicate):
		s.logger.Warn("%s: duplicate: %v", op, err)
		return ErrDuplicate
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
}

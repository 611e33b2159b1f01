package catalog

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.GroomingService) (*domain.GroomingService, error)
	GetByID(ctx context.Context, id int64) (*domain.GroomingService, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.GroomingService, error)
	Update(ctx context.Context, s *domain.GroomingService) (*domain.GroomingService, error)
	Delete(ctx context.Context, id int64) error
}

// PerkRepository интерфейс репозитория мимо
type PerkRepository interface {
	Create(ctx context.Context, p *domain.Perk) (*domain.Perk, error)
	GetByID(ctx context.Context, id int64) (*domain.Perk, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Perk, error)
	Update(ctx context.Context, p *domain.Perk) (*domain.Perk, error)
	Delete(ctx context.Context, id int64) error
}

// BreedRepository интерфейс справочника пород
type BreedRepository interface {
	Create(ctx context.Context, b *domain.DogBreed) (*domain.DogBreed, error)
	GetByID(ctx context.Context, id int64) (*domain.DogBreed, error)
	List(ctx context.Context) ([]*domain.DogBreed, error)
	Update(ctx context.Context, b *domain.DogBreed) (*domain.DogBreed, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

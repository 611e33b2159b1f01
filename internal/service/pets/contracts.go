package pets

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	Create(ctx context.Context, p *domain.Pet) (*domain.Pet, error)
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
	List(ctx context.Context, customerID *int64) ([]*domain.Pet, error)
	Update(ctx context.Context, p *domain.Pet) (*domain.Pet, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

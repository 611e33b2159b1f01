package pets

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/service/pets/models"
)

type PetService interface {
	Create(ctx context.Context, req *models.PetRequest) (*models.PetResponse, error)
	GetByID(ctx context.Context, id int64) (*models.PetResponse, error)
	List(ctx context.Context, customerID *int64) (*models.PetListResponse, error)
	Update(ctx context.Context, id int64, req *models.PetRequest) (*models.PetResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

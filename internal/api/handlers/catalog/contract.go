package catalog

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateService(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error)
	GetService(ctx context.Context, id int64) (*models.ServiceResponse, error)
	ListServices(ctx context.Context, onlyActive bool) (*models.ServiceListResponse, error)
	UpdateService(ctx context.Context, id int64, req *models.ServiceRequest) (*models.ServiceResponse, error)
	DeleteService(ctx context.Context, id int64) error

	CreatePerk(ctx context.Context, req *models.PerkRequest) (*models.PerkResponse, error)
	GetPerk(ctx context.Context, id int64) (*models.PerkResponse, error)
	ListPerks(ctx context.Context, onlyActive bool) (*models.PerkListResponse, error)
	UpdatePerk(ctx context.Context, id int64, req *models.PerkRequest) (*models.PerkResponse, error)
	DeletePerk(ctx context.Context, id int64) error

	CreateBreed(ctx context.Context, req *models.BreedRequest) (*models.BreedResponse, error)
	GetBreed(ctx context.Context, id int64) (*models.BreedResponse, error)
	ListBreeds(ctx context.Context) (*models.BreedListResponse, error)
	UpdateBreed(ctx context.Context, id int64, req *models.BreedRequest) (*models.BreedResponse, error)
	DeleteBreed(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

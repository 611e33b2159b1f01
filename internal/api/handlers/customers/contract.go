package customers

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/service/customers/models"
)

type CustomerService interface {
	Create(ctx context.Context, req *models.CustomerRequest) (*models.CustomerResponse, error)
	GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error)
	List(ctx context.Context, search string) (*models.CustomerListResponse, error)
	Update(ctx context.Context, id int64, req *models.CustomerRequest) (*models.CustomerResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

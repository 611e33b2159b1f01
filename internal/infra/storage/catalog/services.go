package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroomingService/pkg/psqlbuilder"
)

const servicesTable = "grooming_services"

var serviceColumns = []string{"id", "title", "description", "price_cents", "active", "created_at", "updated_at"}

// ServiceRepository репозиторий каталога услуг
type ServiceRepository struct {
	db dbmetrics.DBExecutor
}

// NewServiceRepository создает репозиторий услуг
func NewServiceRepository(db dbmetrics.DBExecutor) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// Create создает услугу
func (r *ServiceRepository) Create(ctx context.Context, s *domain.GroomingService) (*domain.GroomingService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(servicesTable).
		Columns("title", "description", "price_cents", "active").
		Values(s.Title, s.Description, s.PriceCents, s.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt); err != nil {
		return nil, mapWriteError("CreateService", err)
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return s, nil
}

// GetByID получает услугу по ID
func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.GroomingService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From(servicesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan: %w", ErrScanRow, err)
	}
	return s, nil
}

// List возвращает услуги; onlyActive скрывает выключенные
func (r *ServiceRepository) List(ctx context.Context, onlyActive bool) ([]*domain.GroomingService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(serviceColumns...).From(servicesTable).OrderBy("title ASC")
	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.GroomingService, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}
	return services, nil
}

// Update обновляет услугу
func (r *ServiceRepository) Update(ctx context.Context, s *domain.GroomingService) (*domain.GroomingService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(servicesTable).
		Set("title", s.Title).
		Set("description", s.Description).
		Set("price_cents", s.PriceCents).
		Set("active", s.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateService - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, mapWriteError("UpdateService", err)
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return s, nil
}

// Delete удаляет услугу
func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, servicesTable, id)
}

func scanService(row rowScanner) (*domain.GroomingService, error) {
	var s domain.GroomingService
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&s.ID, &s.Title, &s.Description, &s.PriceCents, &s.Active, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}

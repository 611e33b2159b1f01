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

const breedsTable = "dog_breeds"

// BreedRepository репозиторий справочника пород
type BreedRepository struct {
	db dbmetrics.DBExecutor
}

// NewBreedRepository создает репозиторий пород
func NewBreedRepository(db dbmetrics.DBExecutor) *BreedRepository {
	return &BreedRepository{db: db}
}

// Create создает породу
func (r *BreedRepository) Create(ctx context.Context, b *domain.DogBreed) (*domain.DogBreed, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(breedsTable).
		Columns("name").
		Values(b.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBreed - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&b.ID); err != nil {
		return nil, mapWriteError("CreateBreed", err)
	}
	return b, nil
}

// GetByID получает породу по ID
func (r *BreedRepository) GetByID(ctx context.Context, id int64) (*domain.DogBreed, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From(breedsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBreed - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.DogBreed
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBreed - scan: %w", ErrScanRow, err)
	}
	return &b, nil
}

// List возвращает все породы по алфавиту
func (r *BreedRepository) List(ctx context.Context) ([]*domain.DogBreed, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").From(breedsTable).OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBreeds - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBreeds - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	breeds := make([]*domain.DogBreed, 0)
	for rows.Next() {
		var b domain.DogBreed
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("%w: ListBreeds - scan row: %v", ErrScanRow, err)
		}
		breeds = append(breeds, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBreeds - rows error: %v", ErrScanRow, err)
	}
	return breeds, nil
}

// Update переименовывает породу
func (r *BreedRepository) Update(ctx context.Context, b *domain.DogBreed) (*domain.DogBreed, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(breedsTable).
		Set("name", b.Name).
		Where(squirrel.Eq{"id": b.ID}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateBreed - build update query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&b.ID); err != nil {
		return nil, mapWriteError("UpdateBreed", err)
	}
	return b, nil
}

// Delete удаляет породу
func (r *BreedRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, breedsTable, id)
}

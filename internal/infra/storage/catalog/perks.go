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

const perksTable = "perks"

var perkColumns = []string{"id", "title", "description", "active", "created_at", "updated_at"}

// PerkRepository репозиторий мимо (подарков к записи)
type PerkRepository struct {
	db dbmetrics.DBExecutor
}

// NewPerkRepository создает репозиторий мимо
func NewPerkRepository(db dbmetrics.DBExecutor) *PerkRepository {
	return &PerkRepository{db: db}
}

// Create создает мимо
func (r *PerkRepository) Create(ctx context.Context, p *domain.Perk) (*domain.Perk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(perksTable).
		Columns("title", "description", "active").
		Values(p.Title, p.Description, p.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreatePerk - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt); err != nil {
		return nil, mapWriteError("CreatePerk", err)
	}
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return p, nil
}

// GetByID получает мимо по ID
func (r *PerkRepository) GetByID(ctx context.Context, id int64) (*domain.Perk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(perkColumns...).
		From(perksTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPerk - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPerk(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPerk - scan: %w", ErrScanRow, err)
	}
	return p, nil
}

// List возвращает мимо; onlyActive оставляет только действующие
func (r *PerkRepository) List(ctx context.Context, onlyActive bool) ([]*domain.Perk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(perkColumns...).From(perksTable).OrderBy("title ASC")
	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPerks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPerks - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	perks := make([]*domain.Perk, 0)
	for rows.Next() {
		p, err := scanPerk(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListPerks - scan row: %v", ErrScanRow, err)
		}
		perks = append(perks, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPerks - rows error: %v", ErrScanRow, err)
	}
	return perks, nil
}

// Update обновляет мимо
func (r *PerkRepository) Update(ctx context.Context, p *domain.Perk) (*domain.Perk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(perksTable).
		Set("title", p.Title).
		Set("description", p.Description).
		Set("active", p.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdatePerk - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, mapWriteError("UpdatePerk", err)
	}
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return p, nil
}

// Delete удаляет мимо
func (r *PerkRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, perksTable, id)
}

func scanPerk(row rowScanner) (*domain.Perk, error) {
	var p domain.Perk
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Active, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return &p, nil
}

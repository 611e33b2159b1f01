package openinghours

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroomingService/pkg/psqlbuilder"
)

const table = "opening_hours"

// Repository репозиторий часов работы (одна строка на день недели)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория часов работы
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все сохранённые правила, таблица может быть неполной
func (r *Repository) List(ctx context.Context) ([]domain.OpeningHoursRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"dow",
		"is_closed",
		"open_time",
		"close_time",
		"max_per_half_hour",
		"updated_at",
	).
		From(table).
		OrderBy("dow ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]domain.OpeningHoursRule, 0, 7)
	for rows.Next() {
		var rule domain.OpeningHoursRule
		var updatedAt sql.NullTime

		if err := rows.Scan(
			&rule.DOW,
			&rule.IsClosed,
			&rule.OpenTime,
			&rule.CloseTime,
			&rule.MaxPerHalfHour,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		rule.UpdatedAt = updatedAt.Time
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// ReplaceAll удаляет все правила и вставляет новые.
// Атомарность обеспечивает транзакция вызывающего кода.
func (r *Repository) ReplaceAll(ctx context.Context, rules []domain.OpeningHoursRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute delete: %w", ErrExecQuery, err)
	}

	if len(rules) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert(table).
		Columns("dow", "is_closed", "open_time", "close_time", "max_per_half_hour")
	for _, rule := range rules {
		insert = insert.Values(rule.DOW, rule.IsClosed, rule.OpenTime, rule.CloseTime, rule.MaxPerHalfHour)
	}

	insertQuery, insertArgs, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

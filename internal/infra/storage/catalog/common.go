package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GroomingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroomingService/pkg/pgerr"
	"github.com/m04kA/SMC-GroomingService/pkg/psqlbuilder"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// deleteByID общий DELETE для таблиц справочников
func deleteByID(ctx context.Context, db dbmetrics.DBExecutor, table string, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, db)

	query, args, err := psqlbuilder.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete %s - build delete query: %v", ErrBuildQuery, table, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerr.IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: Delete %s - %v", ErrInUse, table, err)
	}
	if err != nil {
		return fmt.Errorf("%w: Delete %s - execute delete: %w", ErrExecQuery, table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete %s - get rows affected: %v", ErrExecQuery, table, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func mapWriteError(op string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case pgerr.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s - %v", ErrDuplicate, op, err)
	default:
		return fmt.Errorf("%w: %s - %w", ErrExecQuery, op, err)
	}
}

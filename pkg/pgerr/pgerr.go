package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок Postgres, которые обрабатываются приложением
const (
	CodeUniqueViolation      = "23505"
	CodeForeignKeyViolation  = "23503"
	CodeSerializationFailure = "40001"
	CodeQueryCanceled        = "57014"
)

// Code returns the SQLSTATE of the first *pq.Error in the chain, or ""
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsUniqueViolation reports a unique constraint violation
func IsUniqueViolation(err error) bool {
	return Code(err) == CodeUniqueViolation
}

// IsForeignKeyViolation reports a foreign key violation
func IsForeignKeyViolation(err error) bool {
	return Code(err) == CodeForeignKeyViolation
}

// IsSerializationFailure reports a serializable transaction conflict
func IsSerializationFailure(err error) bool {
	return Code(err) == CodeSerializationFailure
}

// IsQueryCanceled reports a statement cancelled by timeout or context
func IsQueryCanceled(err error) bool {
	return Code(err) == CodeQueryCanceled
}

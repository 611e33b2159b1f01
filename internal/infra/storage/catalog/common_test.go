package catalog

import (
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GroomingService/pkg/pgerr"
)

func TestMapWriteError(t *testing.T) {
	assert.Equal(t, ErrNotFound, mapWriteError("UpdatePerk", sql.ErrNoRows))
	assert.ErrorIs(t, mapWriteError("CreateBreed", &pq.Error{Code: pgerr.CodeUniqueViolation}), ErrDuplicate)
	assert.ErrorIs(t, mapWriteError("CreateBreed", &pq.Error{Code: pgerr.CodeQueryCanceled}), ErrExecQuery)
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required,max=5"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "Ana"}))

	err := Struct(sample{Name: "Alexandre", Email: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name: max=5")
	assert.Contains(t, err.Error(), "email: email")
}

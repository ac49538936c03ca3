package postgres

import (
	"testing"

	"brigade/internal/domain/entity"
	"brigade/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchColumns_OnlyNonNilFields(t *testing.T) {
	name := "Zhang San"
	status := entity.StatusDisabled

	columns := patchColumns(repository.EmployeePatch{
		Name:       &name,
		Status:     &status,
		UpdateUser: 7,
	})

	assert.Equal(t, map[string]any{
		"update_user": int64(7),
		"name":        "Zhang San",
		"status":      0,
	}, columns)
}

func TestPatchColumns_AlwaysStampsUpdateUser(t *testing.T) {
	columns := patchColumns(repository.EmployeePatch{UpdateUser: 3})

	assert.Equal(t, map[string]any{"update_user": int64(3)}, columns)
}

func TestEmployeeMappers_RoundTrip(t *testing.T) {
	employee := &entity.Employee{
		ID:         42,
		Username:   "zhangsan",
		Name:       "Zhang San",
		Password:   "digest",
		Phone:      "13800000000",
		Sex:        "1",
		IDNumber:   "110101199003070000",
		Status:     entity.StatusEnabled,
		CreateUser: 1,
		UpdateUser: 2,
	}

	got := toEmployeeDomain(fromEmployeeDomain(employee))
	require.NotNil(t, got)
	assert.Equal(t, employee.ID, got.ID)
	assert.Equal(t, employee.Username, got.Username)
	assert.Equal(t, employee.Status, got.Status)
	assert.Equal(t, employee.CreateUser, got.CreateUser)
	assert.Equal(t, employee.UpdateUser, got.UpdateUser)
}

func TestEmployeeMappers_NilSafe(t *testing.T) {
	assert.Nil(t, toEmployeeDomain(nil))
	assert.Nil(t, fromEmployeeDomain(nil))
}

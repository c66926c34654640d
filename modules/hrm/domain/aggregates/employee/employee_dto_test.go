package employee_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vandaszabo/mintaprojekt/modules/hrm/domain/aggregates/employee"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/domain/value_objects/phone"
)

func validDTO() *employee.CreateDTO {
	return &employee.CreateDTO{
		FirstName:    "Alice",
		LastName:     "Smith",
		Email:        "alice.smith@example.com",
		CountryCode:  "+36",
		AreaCode:     "30",
		LocalNumber:  "1234567",
		HireDate:     time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		JobTitle:     "HR Manager",
		DepartmentID: 1,
	}
}

func TestCreateDTO_ToEntity(t *testing.T) {
	entity, err := validDTO().ToEntity()
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", entity.FullName())
	assert.Equal(t, "+36301234567", entity.Phone().String())
}

func TestCreateDTO_ToEntity_NoPhone(t *testing.T) {
	data := validDTO()
	data.CountryCode, data.AreaCode, data.LocalNumber = "", "", ""

	entity, err := data.ToEntity()
	require.NoError(t, err)
	assert.True(t, entity.Phone().IsZero())
}

func TestCreateDTO_ToEntity_PartialPhone(t *testing.T) {
	data := validDTO()
	data.LocalNumber = ""

	_, err := data.ToEntity()
	require.ErrorIs(t, err, phone.ErrIncompletePhone)
}

func TestCreateDTO_ToEntity_MissingName(t *testing.T) {
	data := validDTO()
	data.FirstName = ""

	_, err := data.ToEntity()
	require.Error(t, err)
}

func TestCreateDTO_ToEntity_BadEmail(t *testing.T) {
	data := validDTO()
	data.Email = "not-an-email"

	_, err := data.ToEntity()
	require.Error(t, err)
}

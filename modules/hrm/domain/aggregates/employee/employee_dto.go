package employee

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/value_objects/internet"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/domain/value_objects/phone"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Every core field is mandatory. The phone parts are not: an employee may
// have no phone on record, but a partially filled number is rejected by the
// phone value object before any write reaches the store.
type CreateDTO struct {
	FirstName    string    `validate:"required"`
	LastName     string    `validate:"required"`
	Email        string    `validate:"required,email"`
	CountryCode  string    `validate:"omitempty"`
	AreaCode     string    `validate:"omitempty"`
	LocalNumber  string    `validate:"omitempty"`
	HireDate     time.Time `validate:"required"`
	JobTitle     string    `validate:"required"`
	DepartmentID uint      `validate:"required"`
}

type UpdateDTO struct {
	FirstName    string    `validate:"required"`
	LastName     string    `validate:"required"`
	Email        string    `validate:"required,email"`
	CountryCode  string    `validate:"omitempty"`
	AreaCode     string    `validate:"omitempty"`
	LocalNumber  string    `validate:"omitempty"`
	HireDate     time.Time `validate:"required"`
	JobTitle     string    `validate:"required"`
	DepartmentID uint      `validate:"required"`
}

func (d *CreateDTO) ToEntity() (Employee, error) {
	if err := validate.Struct(d); err != nil {
		return nil, err
	}
	email, err := internet.NewEmail(d.Email)
	if err != nil {
		return nil, err
	}
	phoneNumber, err := phone.New(d.CountryCode, d.AreaCode, d.LocalNumber)
	if err != nil {
		return nil, err
	}
	return New(d.FirstName, d.LastName, email, phoneNumber, d.HireDate, d.JobTitle, d.DepartmentID), nil
}

func (d *UpdateDTO) ToEntity(id uint) (Employee, error) {
	if err := validate.Struct(d); err != nil {
		return nil, err
	}
	email, err := internet.NewEmail(d.Email)
	if err != nil {
		return nil, err
	}
	phoneNumber, err := phone.New(d.CountryCode, d.AreaCode, d.LocalNumber)
	if err != nil {
		return nil, err
	}
	return New(d.FirstName, d.LastName, email, phoneNumber, d.HireDate, d.JobTitle, d.DepartmentID, WithID(id)), nil
}

package user

import (
	"github.com/go-playground/validator/v10"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/value_objects/internet"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type CreateDTO struct {
	UserName string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func (d *CreateDTO) ToEntity() (User, error) {
	if err := validate.Struct(d); err != nil {
		return nil, err
	}
	email, err := internet.NewEmail(d.Email)
	if err != nil {
		return nil, err
	}
	return New(d.UserName, email).SetPassword(d.Password)
}

package internet

import (
	"net/mail"
	"strings"

	"github.com/go-faster/errors"
)

var ErrInvalidEmail = errors.New("invalid email")

type Email struct {
	value string
}

func NewEmail(v string) (Email, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return Email{}, ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(v)
	if err != nil {
		return Email{}, errors.Wrap(ErrInvalidEmail, v)
	}
	return Email{value: addr.Address}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) IsZero() bool {
	return e.value == ""
}

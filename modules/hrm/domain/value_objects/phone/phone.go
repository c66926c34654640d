package phone

import (
	"strings"

	"github.com/go-faster/errors"
)

// DefaultCountryCode matches the stored representation, e.g. "+36301234567".
const DefaultCountryCode = "+36"

var ErrIncompletePhone = errors.New("phone number parts must be all present or all absent")

// Phone is a country code + area code + local number triple. A zero Phone
// is valid and means "no phone on record"; a partially filled one is not.
type Phone struct {
	countryCode string
	areaCode    string
	localNumber string
}

func New(countryCode, areaCode, localNumber string) (Phone, error) {
	countryCode = strings.TrimSpace(countryCode)
	areaCode = strings.TrimSpace(areaCode)
	localNumber = strings.TrimSpace(localNumber)

	empty := countryCode == "" && areaCode == "" && localNumber == ""
	full := countryCode != "" && areaCode != "" && localNumber != ""
	if !empty && !full {
		return Phone{}, ErrIncompletePhone
	}
	return Phone{
		countryCode: countryCode,
		areaCode:    areaCode,
		localNumber: localNumber,
	}, nil
}

// Parse splits a stored full number back into its parts. Values that do not
// carry the default country code are returned as a zero Phone.
func Parse(full string) Phone {
	if !strings.HasPrefix(full, DefaultCountryCode) {
		return Phone{}
	}
	rest := full[len(DefaultCountryCode):]
	if len(rest) < 3 {
		return Phone{}
	}
	return Phone{
		countryCode: DefaultCountryCode,
		areaCode:    rest[:2],
		localNumber: rest[2:],
	}
}

func (p Phone) CountryCode() string {
	return p.countryCode
}

func (p Phone) AreaCode() string {
	return p.areaCode
}

func (p Phone) LocalNumber() string {
	return p.localNumber
}

func (p Phone) IsZero() bool {
	return p == Phone{}
}

func (p Phone) String() string {
	return p.countryCode + p.areaCode + p.localNumber
}

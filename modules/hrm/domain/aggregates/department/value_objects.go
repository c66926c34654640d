package department

import "github.com/go-faster/errors"

// Name is drawn from the fixed set of known departments.
type Name string

const (
	HumanResources        Name = "HumanResources"
	Finance               Name = "Finance"
	InformationTechnology Name = "InformationTechnology"
	Sales                 Name = "Sales"
	Marketing             Name = "Marketing"
	CustomerService       Name = "CustomerService"
)

var ErrUnknownName = errors.New("unknown department name")

func AllNames() []Name {
	return []Name{HumanResources, Finance, InformationTechnology, Sales, Marketing, CustomerService}
}

func NewName(v string) (Name, error) {
	name := Name(v)
	if !name.IsValid() {
		return "", errors.Wrap(ErrUnknownName, v)
	}
	return name, nil
}

func (n Name) String() string {
	return string(n)
}

func (n Name) IsValid() bool {
	switch n {
	case HumanResources, Finance, InformationTechnology, Sales, Marketing, CustomerService:
		return true
	}
	return false
}

package permission

import "github.com/go-faster/errors"

// ClaimType is the claim name the authorization layer keys on. Permissions
// only leave this closed enumeration as (ClaimType, value) string pairs at
// the persistence and middleware boundaries.
const ClaimType = "Permission"

type Permission string

const (
	Select Permission = "Select"
	Insert Permission = "Insert"
	Update Permission = "Update"
	Delete Permission = "Delete"
)

var ErrUnknownPermission = errors.New("unknown permission")

func All() []Permission {
	return []Permission{Select, Insert, Update, Delete}
}

func New(v string) (Permission, error) {
	p := Permission(v)
	if !p.IsValid() {
		return "", errors.Wrap(ErrUnknownPermission, v)
	}
	return p, nil
}

func (p Permission) IsValid() bool {
	switch p {
	case Select, Insert, Update, Delete:
		return true
	}
	return false
}

// Claim is the external (claim type, claim value) representation.
type Claim struct {
	Type  string
	Value string
}

func (p Permission) Claim() Claim {
	return Claim{Type: ClaimType, Value: string(p)}
}

// FromClaim converts an external claim pair back into the enumeration.
func FromClaim(c Claim) (Permission, error) {
	if c.Type != ClaimType {
		return "", errors.Wrap(ErrUnknownPermission, c.Type)
	}
	return New(c.Value)
}

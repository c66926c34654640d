package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/entities/permission"
)

func TestNew(t *testing.T) {
	p, err := permission.New("Select")
	require.NoError(t, err)
	assert.Equal(t, permission.Select, p)

	_, err = permission.New("Drop")
	require.ErrorIs(t, err, permission.ErrUnknownPermission)
}

func TestClaimRoundTrip(t *testing.T) {
	for _, p := range permission.All() {
		c := p.Claim()
		assert.Equal(t, permission.ClaimType, c.Type)

		got, err := permission.FromClaim(c)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestFromClaim_WrongType(t *testing.T) {
	_, err := permission.FromClaim(permission.Claim{Type: "Scope", Value: "Select"})
	require.ErrorIs(t, err, permission.ErrUnknownPermission)
}

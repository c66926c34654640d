package internet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/value_objects/internet"
)

func TestNewEmail(t *testing.T) {
	email, err := internet.NewEmail("admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email.Value())
	assert.False(t, email.IsZero())
}

func TestNewEmail_Invalid(t *testing.T) {
	for _, v := range []string{"", "   ", "not-an-email", "a@"} {
		_, err := internet.NewEmail(v)
		require.ErrorIs(t, err, internet.ErrInvalidEmail, "value %q", v)
	}
}

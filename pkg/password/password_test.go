package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	hashed, err := HashPassword("check_in_123")
	require.NoError(t, err)
	assert.NotEqual(t, "check_in_123", hashed)

	assert.True(t, CheckPasswordHash("check_in_123", hashed))
	assert.False(t, CheckPasswordHash("wrong-password", hashed))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("secret-value")
	require.NoError(t, err)
	second, err := HashPassword("secret-value")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

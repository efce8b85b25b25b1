//go:build unit

package password_test

import (
	"testing"

	"hotel-loyalty-core/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("hashes and verifies", func(t *testing.T) {
		hashed, err := password.HashPassword("s3cure-pass")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cure-pass", hashed)

		require.NoError(t, password.ComparePassword(hashed, "s3cure-pass"))
	})

	t.Run("empty password rejected", func(t *testing.T) {
		_, err := password.HashPassword("")
		require.ErrorIs(t, err, password.ErrInvalidPassword)
	})

	t.Run("hashes are salted", func(t *testing.T) {
		first, err := password.HashPassword("same-input")
		require.NoError(t, err)
		second, err := password.HashPassword("same-input")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestComparePassword(t *testing.T) {
	hashed, err := password.HashPassword("s3cure-pass")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		require.ErrorIs(t, password.ComparePassword(hashed, "wrong"), password.ErrComparisonFailed)
	})

	t.Run("empty inputs rejected", func(t *testing.T) {
		require.ErrorIs(t, password.ComparePassword("", "pass"), password.ErrInvalidPassword)
		require.ErrorIs(t, password.ComparePassword(hashed, ""), password.ErrInvalidPassword)
	})
}

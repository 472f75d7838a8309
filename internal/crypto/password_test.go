package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	require.NoError(t, hasher.Compare(hash, "secret"))
}

func TestCompare_Mismatch(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	err = hasher.Compare(hash, "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestCompare_AcceptsForeignBcryptHash(t *testing.T) {
	// Hashes produced elsewhere (e.g. with a different cost) still verify.
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, NewPasswordHasher().Compare(string(hash), "secret"))
}

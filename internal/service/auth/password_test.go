package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)

	hash1, err := h.Hash("password")
	require.NoError(t, err)
	hash2, err := h.Hash("password")
	require.NoError(t, err)

	assert.NotEqual(t, "password", hash1)
	assert.NotEqual(t, hash1, hash2, "each hash uses a fresh salt")

	assert.NoError(t, h.Compare(hash1, "password"))
	assert.NoError(t, h.Compare(hash2, "password"))
	assert.ErrorIs(t, h.Compare(hash1, "Password"), ErrPasswordMismatch)

	cost, err := bcrypt.Cost([]byte(hash1))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasherRejectsLongPasswords(t *testing.T) {
	t.Parallel()

	_, err := NewBcryptHasher(bcrypt.MinCost).Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestNewBcryptHasherCostFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).Cost())
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).Cost())
	assert.Equal(t, 12, NewBcryptHasher(12).Cost())
}

func TestBcryptVerifierMalformedHash(t *testing.T) {
	t.Parallel()

	err := NewBcryptVerifier().Compare("not-a-hash", "password")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}

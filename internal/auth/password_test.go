package auth

import (
	"strings"
	"testing"

	"github.com/akash4797/secure-encryption-decyrption-app/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)

	assert.True(t, h.Verify("correct horse", hash))
	assert.False(t, h.Verify("correct horsf", hash))
	assert.False(t, h.Verify("", hash))
}

func TestHasher_FreshSaltPerCall(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("same-password")
	require.NoError(t, err)
	b, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Verify("same-password", a))
	assert.True(t, h.Verify("same-password", b))
}

func TestHasher_MalformedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	for _, bad := range []string{"", "not-a-hash", "$2a$10$short", strings.Repeat("x", 60)} {
		assert.False(t, h.Verify("whatever", bad), "hash %q", bad)
	}
}

func TestHasher_PasswordTooLong(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestNewHasher_OutOfRangeCostFallsBack(t *testing.T) {
	assert.Equal(t, DefaultCost, NewHasher(0).cost)
	assert.Equal(t, DefaultCost, NewHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewHasher(12).cost)
}

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	h := NewPasswordHasher()

	digest, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$"))

	ok, err := h.Verify("correct horse battery staple", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong password", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHash_UniqueSalts(t *testing.T) {
	h := NewPasswordHasher()

	first, err := h.Hash("same password")
	require.NoError(t, err)
	second, err := h.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify_MalformedDigest(t *testing.T) {
	h := NewPasswordHasher()

	tests := []string{
		"",
		"plaintext-password",
		"$bcrypt$whatever",
		"$argon2id$v=19$m=65536,t=1,p=4$not-base64!!$x",
	}

	for _, digest := range tests {
		_, err := h.Verify("anything", digest)
		assert.ErrorIs(t, err, ErrMalformedDigest, "digest %q", digest)
	}
}

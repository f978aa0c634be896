package passwords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_HashPassword_ProducesArgon2idHash(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
}

func Test_HashPassword_SamePasswordProducesDifferentHashes(t *testing.T) {
	first, err := HashPassword("password123")
	require.NoError(t, err)

	second, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func Test_VerifyPassword_WithCorrectPassword_ReturnsTrue(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("password123", hash))
}

func Test_VerifyPassword_WithWrongPassword_ReturnsFalse(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("password124", hash))
}

func Test_VerifyPassword_WithMalformedHash_ReturnsFalse(t *testing.T) {
	assert.False(t, VerifyPassword("password123", "not-a-hash"))
	assert.False(t, VerifyPassword("password123", "$argon2id$v=19$garbage"))
	assert.False(t, VerifyPassword("password123", ""))
}

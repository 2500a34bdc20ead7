package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "secret", digest)

	assert.True(t, hasher.Verify("secret", digest))
	assert.False(t, hasher.Verify("wrong", digest))
}

func TestPasswordHasher_SelfSalting(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret")
	assert.NoError(t, err)
	second, err := hasher.Hash("secret")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("secret", first))
	assert.True(t, hasher.Verify("secret", second))
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	tests := []struct {
		name   string
		digest string
	}{
		{name: "empty digest", digest: ""},
		{name: "plaintext digest", digest: "secret"},
		{name: "truncated digest", digest: "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Verify("secret", tt.digest))
		})
	}
}

func TestNewPasswordHasher_CostFallback(t *testing.T) {
	hasher := NewPasswordHasher(99)
	assert.Equal(t, DefaultBcryptCost, hasher.cost)

	hasher = NewPasswordHasher(0)
	assert.Equal(t, DefaultBcryptCost, hasher.cost)
}

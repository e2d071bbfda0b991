package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_Roundtrip(t *testing.T) {
	h := NewHasher()

	digest, err := h.Hash("pw123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "pw123", digest)

	assert.True(t, h.Verify("pw123", digest))
	assert.False(t, h.Verify("pw124", digest))
}

func TestHasher_SaltedDigestsDiffer(t *testing.T) {
	h := NewHasher()

	first, err := h.Hash("same password")
	require.NoError(t, err)
	second, err := h.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same password", first))
	assert.True(t, h.Verify("same password", second))
}

func TestHasher_MalformedDigest(t *testing.T) {
	h := NewHasher()

	tests := []struct {
		name   string
		digest string
	}{
		{name: "empty", digest: ""},
		{name: "garbage", digest: "not-a-bcrypt-digest"},
		{name: "truncated", digest: "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, h.Verify("pw123", tt.digest))
		})
	}
}

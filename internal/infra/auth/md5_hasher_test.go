package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMD5Hasher_Digest(t *testing.T) {
	hasher := NewMD5Hasher()

	// Known digest, matches the rows seeded in legacy employee tables.
	assert.Equal(t, "e10adc3949ba59abbe56e057f20f883e", hasher.Digest("123456"))

	// Deterministic: same input, same digest, every time.
	assert.Equal(t, hasher.Digest("some-password"), hasher.Digest("some-password"))

	// Fixed length regardless of input length.
	assert.Len(t, hasher.Digest(""), 32)
	assert.Len(t, hasher.Digest("a very long password with spaces and symbols !@#"), 32)
}

func TestMD5Hasher_Check(t *testing.T) {
	hasher := NewMD5Hasher()

	stored := hasher.Digest("123456")

	assert.True(t, hasher.Check("123456", stored))
	assert.False(t, hasher.Check("654321", stored))
	assert.False(t, hasher.Check("123456", "not-a-digest"))
}

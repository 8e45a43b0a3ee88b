package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "battery staple"))
	assert.False(t, CheckPassword("not-a-hash", "correct horse"))

	again, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "salted hashes differ")
}

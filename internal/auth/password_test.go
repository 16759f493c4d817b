package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("juancito")
	require.NoError(t, err)
	assert.NotEqual(t, "juancito", hash)

	assert.True(t, CheckPassword(hash, "juancito"))
	assert.False(t, CheckPassword(hash, "Juancito"))
	assert.False(t, CheckPassword(hash, ""))
	assert.False(t, CheckPassword("not-a-hash", "juancito"))
}

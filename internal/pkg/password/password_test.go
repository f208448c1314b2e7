//go:build unit

package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := HashWithCost("thiganth", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "thiganth", hashed)

	assert.NoError(t, Compare(hashed, "thiganth"))
	assert.ErrorIs(t, Compare(hashed, "wrong"), ErrComparisonFailed)
}

func TestHash_Empty(t *testing.T) {
	_, err := Hash("")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestCompare_Empty(t *testing.T) {
	assert.ErrorIs(t, Compare("", "x"), ErrInvalidPassword)
	assert.ErrorIs(t, Compare("$2a$", ""), ErrInvalidPassword)
}

package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	b := NewWithCost(bcrypt.MinCost)

	hash, err := b.HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.NoError(t, b.ComparePassword(hash, "s3cret!"))
	assert.Error(t, b.ComparePassword(hash, "wrong"))
}

func TestNewWithCost_OutOfRangeFallsBack(t *testing.T) {
	b := NewWithCost(100).(*bcryptService)
	assert.Equal(t, DefaultCost, b.cost)
}

func TestNew_UsesWorkFactor12(t *testing.T) {
	b := New().(*bcryptService)
	assert.Equal(t, 12, b.cost)
}

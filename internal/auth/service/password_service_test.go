package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordServiceHashAndCompare(t *testing.T) {
	svc, err := NewPasswordService()
	require.NoError(t, err)

	hashed, err := svc.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "correct horse battery staple", hashed)

	assert.True(t, svc.Compare("correct horse battery staple", hashed))
	assert.False(t, svc.Compare("wrong password", hashed))
}

func TestPasswordServiceHashesAreSalted(t *testing.T) {
	svc, err := NewPasswordService()
	require.NoError(t, err)

	first, err := svc.Hash("same password")
	require.NoError(t, err)
	second, err := svc.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, svc.Compare("same password", first))
	assert.True(t, svc.Compare("same password", second))
}

func TestPasswordServiceCompareInvalidHash(t *testing.T) {
	svc, err := NewPasswordService()
	require.NoError(t, err)

	assert.False(t, svc.Compare("any password", "not-a-valid-hash"))
	assert.False(t, svc.Compare("any password", ""))
}

package hashing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questguild/quests-tracker/internal/hashing"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := hashing.NewBcryptHasher()

	hashed, err := hasher.Hash("swordfish")
	require.NoError(t, err)
	assert.NotEqual(t, "swordfish", hashed)

	assert.NoError(t, hasher.Verify(hashed, "swordfish"))
	assert.Error(t, hasher.Verify(hashed, "not-swordfish"))
}

func TestBcryptHasherSaltsEachHash(t *testing.T) {
	t.Parallel()

	hasher := hashing.NewBcryptHasher()

	first, err := hasher.Hash("swordfish")
	require.NoError(t, err)
	second, err := hasher.Hash("swordfish")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

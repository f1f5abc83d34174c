package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	assert.Equal(t, a.Perm(10), b.Perm(10))
	assert.Equal(t, a.NormFloat64(), b.NormFloat64())

	c := NewRNG(43)
	assert.NotEqual(t, NewRNG(42).Perm(10), c.Perm(10))
}

func TestRNG_Perm(t *testing.T) {
	perm := NewRNG(7).Perm(5)
	require.Len(t, perm, 5)

	seen := make(map[int]bool)
	for _, v := range perm {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
		assert.False(t, seen[v], "duplicate index %d", v)
		seen[v] = true
	}
}

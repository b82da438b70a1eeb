package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGIsDeterministicForSeed(t *testing.T) {
	a := NewPRNGService(99)
	b := NewPRNGService(99)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(10), b.Intn(10))
	}
}

func TestIntRange(t *testing.T) {
	rng := NewPRNGService(1)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		v := rng.IntRange(1, 3)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 3)
		seen[v] = true
	}
	assert.Len(t, seen, 3, "upper bound is inclusive")
	assert.Equal(t, 4, rng.IntRange(4, 4))
	assert.Equal(t, 4, rng.IntRange(4, 0))
}

func TestChanceBounds(t *testing.T) {
	rng := NewPRNGService(1)
	for i := 0; i < 100; i++ {
		assert.False(t, rng.Chance(0))
		assert.True(t, rng.Chance(1))
	}
	v := rng.FloatRange(2, 3)
	assert.GreaterOrEqual(t, v, 2.0)
	assert.Less(t, v, 3.0)
}

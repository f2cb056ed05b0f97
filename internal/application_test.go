package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRand(t *testing.T) {
	t.Run("Fixed seed repeats the game", func(t *testing.T) {
		// Given: two generators with the same seed
		first, second := newRand(7), newRand(7)

		// Then: they produce the same sequence
		for range 10 {
			assert.Equal(t, first.Uint64(), second.Uint64())
		}
	})

	t.Run("Zero seed is random", func(t *testing.T) {
		// Given: two generators without a seed
		first, second := newRand(0), newRand(0)

		// Then: they diverge
		assert.NotEqual(t, first.Uint64(), second.Uint64())
	})
}

package dice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollStaysInRange(t *testing.T) {
	roller := New(&Config{Seed: 42})

	for i := 0; i < 1000; i++ {
		value := roller.Roll(20)
		assert.GreaterOrEqual(t, value, 1)
		assert.LessOrEqual(t, value, 20)
	}
}

func TestRollDefaultsToSixSides(t *testing.T) {
	roller := New(&Config{Seed: 7})

	for i := 0; i < 200; i++ {
		value := roller.Roll(0)
		assert.GreaterOrEqual(t, value, 1)
		assert.LessOrEqual(t, value, 6)
	}
}

func TestRollIsDeterministicForSeed(t *testing.T) {
	seed := int64(1)
	rng := rand.New(rand.NewSource(seed))
	expected := []int{rng.Intn(6) + 1, rng.Intn(6) + 1, rng.Intn(6) + 1}

	roller := New(&Config{Seed: seed})
	actual := []int{roller.Roll(6), roller.Roll(6), roller.Roll(6)}

	assert.Equal(t, expected, actual)
}

func TestRollSum(t *testing.T) {
	seed := int64(3)
	rng := rand.New(rand.NewSource(seed))
	expected := 0
	for i := 0; i < 4; i++ {
		expected += rng.Intn(8) + 1
	}

	roller := New(&Config{Seed: seed})
	assert.Equal(t, expected, roller.RollSum(4, 8))

	for i := 0; i < 500; i++ {
		total := roller.RollSum(3, 6)
		assert.GreaterOrEqual(t, total, 3)
		assert.LessOrEqual(t, total, 18)
	}
}

func TestRollSumWithNoDice(t *testing.T) {
	roller := New(nil)
	assert.Zero(t, roller.RollSum(0, 6))
}

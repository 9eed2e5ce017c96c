package probability

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDistributionTwoSixSidedDice(t *testing.T) {
	dist, err := NewDistribution(2, 6)
	require.NoError(t, err)

	assert.Equal(t, 2, dist.Min)
	assert.Equal(t, 12, dist.Max)
	assert.Equal(t, 7.0, dist.Mean)
	assert.Equal(t, []int{7}, dist.Modes)
	assert.Equal(t, "36", dist.Total.String())
	require.Len(t, dist.Outcomes, 11)

	expectedWays := []int64{1, 2, 3, 4, 5, 6, 5, 4, 3, 2, 1}
	for i, outcome := range dist.Outcomes {
		assert.Equal(t, i+2, outcome.Sum)
		assert.Zero(t, big.NewInt(expectedWays[i]).Cmp(outcome.Ways), "sum %d", outcome.Sum)
	}

	assert.Equal(t, 0.0556, dist.Probability(3))
	assert.Equal(t, 0.1667, dist.Probability(7))
	assert.Zero(t, dist.Probability(1))
	assert.Zero(t, dist.Probability(13))
}

func TestNewDistributionMatchesRoll(t *testing.T) {
	dist, err := NewDistribution(10, 10)
	require.NoError(t, err)

	for _, outcome := range dist.Outcomes {
		expected, err := Roll(10, 10, outcome.Sum)
		require.NoError(t, err)
		assert.Equal(t, expected, outcome.Probability, "sum %d", outcome.Sum)
	}
	assert.Equal(t, 0.0375, dist.Probability(50))
}

func TestNewDistributionModes(t *testing.T) {
	// 3d6 has two equally likely middle totals
	dist, err := NewDistribution(3, 6)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11}, dist.Modes)
	assert.Equal(t, 10.5, dist.Mean)

	// Every face of a single die is a mode
	dist, err = NewDistribution(1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, dist.Modes)
}

func TestNewDistributionRejectsInvalidArguments(t *testing.T) {
	_, err := NewDistribution(0, 6)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewDistribution(2, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

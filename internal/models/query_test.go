package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotation(t *testing.T) {
	assert.Equal(t, "2d6", Notation(2, 6))

	query := &OddsQuery{DiceCount: 10, Sides: 10}
	assert.Equal(t, "10d10", query.Notation())
}

func TestParseNotation(t *testing.T) {
	testCases := []struct {
		notation  string
		diceCount int
		sides     int
	}{
		{notation: "3d6", diceCount: 3, sides: 6},
		{notation: "10D10", diceCount: 10, sides: 10},
		{notation: " 1d20 ", diceCount: 1, sides: 20},
	}

	for _, tc := range testCases {
		t.Run(tc.notation, func(t *testing.T) {
			diceCount, sides, err := ParseNotation(tc.notation)
			require.NoError(t, err)
			assert.Equal(t, tc.diceCount, diceCount)
			assert.Equal(t, tc.sides, sides)
		})
	}
}

func TestParseNotationErrors(t *testing.T) {
	for _, notation := range []string{"", "36", "d6", "3d", "xd6", "3dx"} {
		t.Run(notation, func(t *testing.T) {
			_, _, err := ParseNotation(notation)
			assert.Error(t, err)
		})
	}
}

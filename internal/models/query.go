package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// QueryKind identifies which odds question was asked
type QueryKind string

const (
	// QueryKindExact asks for the chance of an exact total
	QueryKindExact QueryKind = "exact"

	// QueryKindDistribution asks for every reachable total
	QueryKindDistribution QueryKind = "distribution"

	// QueryKindSimulation compares random rolls to the exact odds
	QueryKindSimulation QueryKind = "simulation"
)

// OddsQuery is a record of an odds question asked in a channel
type OddsQuery struct {
	// ID is the unique identifier for the query
	ID string `json:"id"`

	// ChannelID is the Discord channel the query was asked in
	ChannelID string `json:"channel_id"`

	// UserID is the Discord user who asked
	UserID string `json:"user_id"`

	// UserName is the display name of the user who asked
	UserName string `json:"user_name"`

	Kind QueryKind `json:"kind"`

	// DiceCount is the number of dice rolled
	DiceCount int `json:"dice_count"`

	// Sides is the number of sides on each die
	Sides int `json:"sides"`

	// Target is the total asked about, zero for distributions
	Target int `json:"target,omitempty"`

	// Probability is the exact chance of Target, rounded to 4 places
	Probability float64 `json:"probability"`

	// Observed is the simulated frequency of Target, for simulations only
	Observed float64 `json:"observed,omitempty"`

	// CreatedAt is when the query was asked
	CreatedAt time.Time `json:"created_at"`
}

// Notation returns the dice in NdS form, e.g. 2d6
func (q *OddsQuery) Notation() string {
	return Notation(q.DiceCount, q.Sides)
}

// Notation formats a set of equal dice in NdS form
func Notation(diceCount, sides int) string {
	return strconv.Itoa(diceCount) + "d" + strconv.Itoa(sides)
}

// ParseNotation parses dice written in NdS form, e.g. 3d6
func ParseNotation(notation string) (int, int, error) {
	count, sides, ok := strings.Cut(strings.ToLower(strings.TrimSpace(notation)), "d")
	if !ok {
		return 0, 0, fmt.Errorf("invalid dice notation %q", notation)
	}

	diceCount, err := strconv.Atoi(count)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid dice count in %q: %w", notation, err)
	}

	sideCount, err := strconv.Atoi(sides)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid sides in %q: %w", notation, err)
	}

	return diceCount, sideCount, nil
}

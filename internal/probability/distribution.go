package probability

import "math/big"

// Outcome is a single reachable total and how likely it is
type Outcome struct {
	// Sum is the total shown by the dice
	Sum int

	// Ways is the number of ordered rolls that give Sum
	Ways *big.Int

	// Probability is Ways over Total, rounded to Precision places
	Probability float64
}

// Distribution describes every reachable total of a set of equal dice
type Distribution struct {
	DiceCount int
	Sides     int

	// Total is the size of the outcome space, sides^diceCount
	Total *big.Int

	// Outcomes holds one entry per total from Min to Max in ascending order
	Outcomes []Outcome

	Min  int
	Max  int
	Mean float64

	// Modes are the most likely totals in ascending order
	Modes []int
}

// NewDistribution builds the full distribution of totals for diceCount dice
func NewDistribution(diceCount, sides int) (*Distribution, error) {
	maxSum, err := validate(diceCount, sides, 0)
	if err != nil {
		return nil, err
	}

	coefficients := singleDie(sides).pow(diceCount)
	total := outcomes(diceCount, sides)

	dist := &Distribution{
		DiceCount: diceCount,
		Sides:     sides,
		Total:     total,
		Outcomes:  make([]Outcome, 0, maxSum-diceCount+1),
		Min:       diceCount,
		Max:       maxSum,
		Mean:      float64(diceCount) * float64(sides+1) / 2,
	}

	var best *big.Int
	for sum := diceCount; sum <= maxSum; sum++ {
		ways := coefficients[sum]
		dist.Outcomes = append(dist.Outcomes, Outcome{
			Sum:         sum,
			Ways:        ways,
			Probability: ratio(ways, total),
		})

		switch {
		case best == nil || ways.Cmp(best) > 0:
			best = ways
			dist.Modes = []int{sum}
		case ways.Cmp(best) == 0:
			dist.Modes = append(dist.Modes, sum)
		}
	}

	return dist, nil
}

// Probability returns the rounded probability of sum, or 0 if it is unreachable
func (d *Distribution) Probability(sum int) float64 {
	if sum < d.Min || sum > d.Max {
		return 0
	}
	return d.Outcomes[sum-d.Min].Probability
}

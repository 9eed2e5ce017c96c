// Package probability computes exact probabilities for sums of equal-sided dice.
//
// The number of ways diceCount dice with faces 1..sides can total n is the
// number of compositions of n into diceCount parts each in [1, sides], which is
// the coefficient of x^n in (x + x^2 + ... + x^sides)^diceCount. Coefficients
// are held as big integers so that only the final ratio is ever a float.
package probability

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Precision is the number of decimal places probabilities are rounded to
const Precision = 4

// Roll returns the probability that diceCount dice with the given number of
// sides total exactly target, rounded to Precision decimal places.
//
// # Impossible targets
//
// A target above diceCount*sides returns exactly 0 without building the
// polynomial. A target below diceCount also returns 0, since the convolved
// polynomial has no terms below x^diceCount.
//
// # Cost
//
// Only the terms up to x^target are convolved. Totals are symmetric about
// the mean, so a target above it is answered from its mirror
// diceCount*(sides+1)-target instead.
//
// # Rounding
//
// The exact count over sides^diceCount is converted to the nearest float64 and
// then rounded half to even on that binary value, so 2d6 totalling 3 gives
// 0.0556 and 10d10 totalling 50 gives 0.0375.
//
// # Constraints and errors
//
//   - diceCount and sides must be positive and target must not be negative,
//     otherwise ErrInvalidArgument is returned.
func Roll(diceCount, sides, target int) (float64, error) {
	maxSum, err := validate(diceCount, sides, target)
	if err != nil {
		return 0, err
	}

	if target > maxSum {
		return 0, nil
	}

	total := outcomes(diceCount, sides)
	exact, _, _ := tally(diceCount, sides, target, total)
	return ratio(exact, total), nil
}

// AtLeast returns the probability that diceCount dice total target or more
func AtLeast(diceCount, sides, target int) (float64, error) {
	maxSum, err := validate(diceCount, sides, target)
	if err != nil {
		return 0, err
	}

	if target > maxSum {
		return 0, nil
	}

	total := outcomes(diceCount, sides)
	_, atLeast, _ := tally(diceCount, sides, target, total)
	return ratio(atLeast, total), nil
}

// AtMost returns the probability that diceCount dice total target or less
func AtMost(diceCount, sides, target int) (float64, error) {
	maxSum, err := validate(diceCount, sides, target)
	if err != nil {
		return 0, err
	}

	if target >= maxSum {
		return 1, nil
	}

	total := outcomes(diceCount, sides)
	_, _, atMost := tally(diceCount, sides, target, total)
	return ratio(atMost, total), nil
}

// Odds summarises the chances of a single target total
type Odds struct {
	// Exact is the probability of rolling target
	Exact float64

	// AtLeast is the probability of rolling target or more
	AtLeast float64

	// AtMost is the probability of rolling target or less
	AtMost float64

	// Ways is the number of ordered rolls that total target
	Ways *big.Int

	// Total is the size of the outcome space
	Total *big.Int
}

// Evaluate computes the exact, at-least and at-most probabilities of target
// from a single convolution. Each value matches Roll, AtLeast and AtMost.
func Evaluate(diceCount, sides, target int) (*Odds, error) {
	maxSum, err := validate(diceCount, sides, target)
	if err != nil {
		return nil, err
	}

	total := outcomes(diceCount, sides)
	if target > maxSum {
		return &Odds{
			AtMost: 1,
			Ways:   new(big.Int),
			Total:  total,
		}, nil
	}

	exact, atLeast, atMost := tally(diceCount, sides, target, total)
	return &Odds{
		Exact:   ratio(exact, total),
		AtLeast: ratio(atLeast, total),
		AtMost:  ratio(atMost, total),
		Ways:    exact,
		Total:   total,
	}, nil
}

// Count returns the exact number of ordered outcomes of diceCount dice that
// total target. It is 0 for unreachable targets.
func Count(diceCount, sides, target int) (*big.Int, error) {
	maxSum, err := validate(diceCount, sides, target)
	if err != nil {
		return nil, err
	}

	if target > maxSum {
		return new(big.Int), nil
	}

	exact, _, _ := tally(diceCount, sides, target, outcomes(diceCount, sides))
	return exact, nil
}

// Coefficients returns the coefficients of the convolved generating polynomial.
// The slice has diceCount*sides+1 entries and entry i is the number of ways to
// roll a total of i.
func Coefficients(diceCount, sides int) ([]*big.Int, error) {
	if _, err := validate(diceCount, sides, 0); err != nil {
		return nil, err
	}

	return singleDie(sides).pow(diceCount), nil
}

// Outcomes returns sides^diceCount, the size of the outcome space
func Outcomes(diceCount, sides int) (*big.Int, error) {
	if _, err := validate(diceCount, sides, 0); err != nil {
		return nil, err
	}

	return outcomes(diceCount, sides), nil
}

// Round rounds value to the given number of decimal places.
// Exact ties round to even.
func Round(value float64, places int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', places, 64), 64)
	if err != nil {
		return value
	}
	return rounded
}

// validate checks the inputs and returns the largest reachable total
func validate(diceCount, sides, target int) (int, error) {
	if diceCount <= 0 {
		return 0, fmt.Errorf("%w: dice count must be positive, got %d", ErrInvalidArgument, diceCount)
	}
	if sides <= 0 {
		return 0, fmt.Errorf("%w: sides must be positive, got %d", ErrInvalidArgument, sides)
	}
	if target < 0 {
		return 0, fmt.Errorf("%w: target must not be negative, got %d", ErrInvalidArgument, target)
	}
	if sides >= math.MaxInt/diceCount {
		return 0, fmt.Errorf("%w: %d dice of %d sides overflow the maximum total", ErrInvalidArgument, diceCount, sides)
	}
	return diceCount * sides, nil
}

// tally counts the outcomes equal to, at least and at most target, which must
// not exceed diceCount*sides. It convolves up to target or its mirror,
// whichever is smaller. Faces above that limit cannot contribute, so they
// are left out of the single-die polynomial too.
func tally(diceCount, sides, target int, total *big.Int) (exact, atLeast, atMost *big.Int) {
	mirror := diceCount*(sides+1) - target

	if target <= mirror {
		coefficients := singleDie(min(sides, target)).powUpTo(diceCount, target)
		exact = new(big.Int).Set(coefficients[target])
		atMost = coefficients.sum(0, target)
		atLeast = new(big.Int).Sub(total, atMost)
		atLeast.Add(atLeast, exact)
		return exact, atLeast, atMost
	}

	// At least target is at most mirror, read from the other end
	coefficients := singleDie(min(sides, mirror)).powUpTo(diceCount, mirror)
	exact = new(big.Int).Set(coefficients[mirror])
	atLeast = coefficients.sum(0, mirror)
	atMost = new(big.Int).Sub(total, atLeast)
	atMost.Add(atMost, exact)
	return exact, atLeast, atMost
}

func outcomes(diceCount, sides int) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(sides)), big.NewInt(int64(diceCount)), nil)
}

// ratio divides exactly and rounds the nearest float64 to Precision places
func ratio(ways, total *big.Int) float64 {
	value, _ := new(big.Rat).SetFrac(ways, total).Float64()
	return Round(value, Precision)
}

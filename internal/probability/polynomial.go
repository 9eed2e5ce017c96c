package probability

import "math/big"

// polynomial holds integer coefficients in ascending order of power,
// so p[i] is the coefficient of x^i
type polynomial []*big.Int

// singleDie returns the generating polynomial of one die, x + x^2 + ... + x^sides.
// No face shows 0, so the constant term is 0.
func singleDie(sides int) polynomial {
	p := make(polynomial, sides+1)
	p[0] = new(big.Int)
	for i := 1; i <= sides; i++ {
		p[i] = big.NewInt(1)
	}
	return p
}

// multiply convolves the coefficients of p and q
func (p polynomial) multiply(q polynomial) polynomial {
	return p.multiplyUpTo(q, len(p)+len(q)-2)
}

// multiplyUpTo convolves p and q, dropping every term above x^limit
func (p polynomial) multiplyUpTo(q polynomial, limit int) polynomial {
	size := min(len(p)+len(q)-1, limit+1)
	out := make(polynomial, size)
	for i := range out {
		out[i] = new(big.Int)
	}

	term := new(big.Int)
	for i, a := range p {
		if i >= size {
			break
		}
		if a.Sign() == 0 {
			continue
		}
		for j, b := range q {
			if i+j >= size {
				break
			}
			if b.Sign() == 0 {
				continue
			}
			out[i+j].Add(out[i+j], term.Mul(a, b))
		}
	}

	return out
}

// pow raises p to the nth power by repeated squaring.
// The result has n*(len(p)-1)+1 coefficients.
func (p polynomial) pow(n int) polynomial {
	return p.powUpTo(n, n*(len(p)-1))
}

// powUpTo raises p to the nth power keeping only the terms up to x^limit
func (p polynomial) powUpTo(n, limit int) polynomial {
	result := polynomial{big.NewInt(1)}
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = result.multiplyUpTo(base, limit)
		}
		n >>= 1
		if n > 0 {
			base = base.multiplyUpTo(base, limit)
		}
	}
	return result
}

// sum adds the coefficients in [from, to], clamped to the polynomial's range
func (p polynomial) sum(from, to int) *big.Int {
	total := new(big.Int)
	if from < 0 {
		from = 0
	}
	if to > len(p)-1 {
		to = len(p) - 1
	}
	for i := from; i <= to; i++ {
		total.Add(total, p[i])
	}
	return total
}

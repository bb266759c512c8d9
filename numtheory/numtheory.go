package numtheory

import (
	"errors"
	"slices"
)

// ErrZeroOperand is returned by GCD when either operand is zero.
var ErrZeroOperand = errors.New("numtheory: 0 cannot be used as an input for gcd")

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
// It returns ErrZeroOperand if a or b is zero.
func GCD(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, ErrZeroOperand
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a, nil
}

// RelativelyPrime reports whether gcd(a, b) == 1.
func RelativelyPrime(a, b uint64) bool {
	d, err := GCD(a, b)

	return err == nil && d == 1
}

// Factors returns the divisors of n other than 1 and n, sorted and without
// duplicates. It returns (nil, false) when there are none: n prime, or n < 4
// (which includes zero and negative n).
//
// Complexity: O(√n) divisions.
func Factors(n int64) ([]int64, bool) {
	if n < 4 {
		return nil, false
	}

	var out []int64
	for i := int64(2); i <= n/i; i++ {
		if n%i == 0 {
			out = append(out, i, n/i)
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	slices.Sort(out)

	return slices.Compact(out), true
}

// Package factorial implements the factorial calculator: n! via an iterative
// running product and via textbook recursion, over arbitrary-precision
// integers. Both strategies share one validation contract; neither holds any
// state, so every function here is a pure function of its input.
package factorial

import (
	"math/big"

	apperrors "github.com/agbru/numcalc/internal/errors"
)

// MaxRecursionDepth bounds the call depth of the recursive strategy. Unlike
// the original environment, Go turns a genuine stack overflow into an
// unrecoverable runtime fatal, so the exhaustion condition is surfaced as an
// explicit error before the runtime limit is reached. The iterative strategy
// has no such bound.
const MaxRecursionDepth = 10_000

// errNegative is the uniform rejection for both strategies.
var errNegative = apperrors.NewDomainError("Factorial is not defined for negative numbers")

// Iterative computes n! by accumulating a running product over 2..n.
// O(n) multiplications, no recursion, no upper bound beyond available memory.
//
// Parameters:
//   - n: The operand. Must be non-negative.
//
// Returns:
//   - *big.Int: n factorial; 1 for n ≤ 1.
//   - error: A DomainError if n is negative.
func Iterative(n int) (*big.Int, error) {
	if n < 0 {
		return nil, errNegative
	}
	result := big.NewInt(1)
	for i := int64(2); i <= int64(n); i++ {
		result.Mul(result, big.NewInt(i))
	}
	return result, nil
}

// Recursive computes n! by the recursive definition n × (n-1)!. It exists to
// demonstrate the recursion and deliberately keeps the linear call depth that
// entails; beyond MaxRecursionDepth it reports resource exhaustion distinctly
// from a domain error, and the caller may retry with Iterative.
//
// Parameters:
//   - n: The operand. Must be non-negative.
//
// Returns:
//   - *big.Int: n factorial; 1 for n ≤ 1.
//   - error: A DomainError if n is negative, or a ResourceExhaustionError if
//     the recursion depth limit would be exceeded.
func Recursive(n int) (*big.Int, error) {
	if n < 0 {
		return nil, errNegative
	}
	if n > MaxRecursionDepth {
		return nil, apperrors.ResourceExhaustionError{
			Operation: "recursive factorial",
			Depth:     MaxRecursionDepth,
		}
	}
	return recurse(n), nil
}

// recurse is the unguarded recursion body. Validation and the depth check
// happen once at the Recursive boundary.
func recurse(n int) *big.Int {
	if n <= 1 {
		return big.NewInt(1)
	}
	return new(big.Int).Mul(big.NewInt(int64(n)), recurse(n-1))
}

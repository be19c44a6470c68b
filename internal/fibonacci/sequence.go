package fibonacci

import (
	"math/big"

	apperrors "github.com/agbru/numcalc/internal/errors"
)

// Sequence assembles an ordered list of the first count Fibonacci values
// computed with the chosen strategy. All strategies yield bit-identical
// sequences for the same count.
//
// Edge cases:
//   - count == 0 yields an empty (non-nil) list for every strategy.
//   - A negative count is a domain error.
//   - MethodRecursive refuses counts whose highest index exceeds
//     RecursiveSequenceLimit, to prevent runaway O(2^n) computation.
//
// Parameters:
//   - count: The number of leading sequence values to produce.
//   - method: The strategy to compute each value with.
//
// Returns:
//   - []*big.Int: The first count Fibonacci values, in order.
//   - error: A DomainError for a negative count, an unrecognized method, or
//     a refused recursive request.
func (g *Generator) Sequence(count int, method Method) ([]*big.Int, error) {
	if count < 0 {
		return nil, apperrors.NewDomainError("Number of terms cannot be negative")
	}
	if count == 0 {
		return []*big.Int{}, nil
	}

	switch method {
	case MethodGenerator:
		stream, err := g.Stream(count)
		if err != nil {
			return nil, err
		}
		return stream.Collect()

	case MethodIterative, MethodRecursive, MethodMemoized:
		if method == MethodRecursive && count-1 > RecursiveSequenceLimit {
			return nil, apperrors.NewDomainError(
				"Recursive method is too slow for n > %d. Use 'iterative', 'memoized', or 'generator' instead",
				RecursiveSequenceLimit)
		}
		seq := make([]*big.Int, 0, count)
		for i := 0; i < count; i++ {
			v, err := g.single(method, i)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil

	default:
		return nil, apperrors.NewDomainError(
			"Invalid method '%s'. Use 'iterative', 'recursive', 'memoized', or 'generator'", method)
	}
}

// SequenceByName resolves a user-supplied method name (case-insensitively,
// defaulting to iterative when empty) and assembles the sequence with it.
//
// Parameters:
//   - count: The number of leading sequence values to produce.
//   - name: The method name, or "" for the default.
//
// Returns:
//   - []*big.Int: The first count Fibonacci values, in order.
//   - error: A DomainError from name resolution or sequence assembly.
func (g *Generator) SequenceByName(count int, name string) ([]*big.Int, error) {
	if name == "" {
		return g.Sequence(count, DefaultMethod)
	}
	method, err := ParseMethod(name)
	if err != nil {
		return nil, err
	}
	return g.Sequence(count, method)
}

// single dispatches one index to the strategy's computation. MethodGenerator
// is handled by Sequence directly and by Compute through a stream.
func (g *Generator) single(method Method, n int) (*big.Int, error) {
	switch method {
	case MethodIterative:
		return g.Iterative(n)
	case MethodRecursive:
		return g.Recursive(n)
	case MethodMemoized:
		return g.Memoized(n)
	default:
		return nil, apperrors.NewDomainError(
			"Invalid method '%s'. Use 'iterative', 'recursive', 'memoized', or 'generator'", method)
	}
}

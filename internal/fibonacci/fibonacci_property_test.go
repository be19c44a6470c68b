package fibonacci

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRecurrence_PropertyBased verifies the fundamental recurrence:
//
//	F(n) = F(n-1) + F(n-2)  for n >= 2
//
// against the reference iterative strategy, for randomly generated indices.
func TestRecurrence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	g := NewGenerator()

	properties.Property("iterative satisfies F(n) = F(n-1) + F(n-2)", prop.ForAll(
		func(n int) bool {
			fn, err := g.Iterative(n)
			if err != nil {
				return false
			}
			fn1, err := g.Iterative(n - 1)
			if err != nil {
				return false
			}
			fn2, err := g.Iterative(n - 2)
			if err != nil {
				return false
			}
			sum := new(big.Int).Add(fn1, fn2)
			return fn.Cmp(sum) == 0
		},
		gen.IntRange(2, 2000),
	))

	properties.TestingRun(t)
}

// TestCassinisIdentity_PropertyBased verifies Cassini's Identity:
//
//	F(n-1) * F(n+1) - F(n)² = (-1)ⁿ
//
// a strong correctness check that catches off-by-one and aliasing mistakes in
// the running-pair advance.
func TestCassinisIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	g := NewGenerator()

	properties.Property("iterative satisfies Cassini's Identity", prop.ForAll(
		func(n int) bool {
			fnMinus1, err := g.Iterative(n - 1)
			if err != nil {
				return false
			}
			fn, err := g.Iterative(n)
			if err != nil {
				return false
			}
			fnPlus1, err := g.Iterative(n + 1)
			if err != nil {
				return false
			}

			// Left side: F(n-1) * F(n+1) - F(n)²
			leftSide := new(big.Int).Mul(fnMinus1, fnPlus1)
			fnSquared := new(big.Int).Mul(fn, fn)
			leftSide.Sub(leftSide, fnSquared)

			// Right side: (-1)ⁿ
			rightSide := big.NewInt(1)
			if n%2 != 0 {
				rightSide.Neg(rightSide)
			}

			return leftSide.Cmp(rightSide) == 0
		},
		gen.IntRange(1, 1000),
	))

	properties.TestingRun(t)
}

// TestMemoizedMatchesIterative_PropertyBased cross-validates the memoized
// strategy against the reference for random indices, on a single shared
// instance so the cache is exercised in arbitrary orders.
func TestMemoizedMatchesIterative_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	g := NewGenerator()

	properties.Property("memoized(n) == iterative(n)", prop.ForAll(
		func(n int) bool {
			mem, err := g.Memoized(n)
			if err != nil {
				return false
			}
			it, err := g.Iterative(n)
			if err != nil {
				return false
			}
			return mem.Cmp(it) == 0
		},
		gen.IntRange(0, 1500),
	))

	properties.TestingRun(t)
}

// TestStreamMatchesIterative_PropertyBased verifies that a bounded stream of
// random length reproduces the reference sequence exactly.
func TestStreamMatchesIterative_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	g := NewGenerator()

	properties.Property("bounded stream reproduces the sequence", prop.ForAll(
		func(count int) bool {
			stream, err := g.Stream(count)
			if err != nil {
				return false
			}
			i := 0
			for {
				v, ok := stream.Next()
				if !ok {
					break
				}
				want, err := g.Iterative(i)
				if err != nil || v.Cmp(want) != 0 {
					return false
				}
				i++
			}
			return i == count
		},
		gen.IntRange(0, 300),
	))

	properties.TestingRun(t)
}

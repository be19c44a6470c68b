// Package fibonacci implements the Fibonacci sequence calculator at the heart
// of numcalc. A Generator exposes four interchangeable strategies (iterative,
// naive recursive, memoized recursive, and lazy stream production) that share
// one validation contract and, for the memoized strategy, one instance-owned
// cache. Values are arbitrary-precision (math/big); the sequence outgrows
// int64 at F(93).
//
// Each Generator owns its cache exclusively. Two Generator instances used
// from independent goroutines never contend; sharing and mutating a single
// instance concurrently requires external synchronization, which this package
// deliberately does not provide.
package fibonacci

import (
	"math/big"

	apperrors "github.com/agbru/numcalc/internal/errors"
)

// errNegativeIndex is the uniform rejection for every strategy.
var errNegativeIndex = apperrors.NewDomainError("Fibonacci sequence is not defined for negative numbers")

// Generator computes Fibonacci numbers through multiple strategies. The zero
// value is not usable; construct instances with NewGenerator so the memo
// cache carries its two seed entries.
type Generator struct {
	memo map[int]*big.Int
}

// NewGenerator creates a Generator with its memoization cache seeded with the
// two base cases {0:0, 1:1}.
//
// Returns:
//   - *Generator: A ready-to-use generator instance.
func NewGenerator() *Generator {
	return &Generator{memo: seededCache()}
}

// seededCache builds a fresh cache containing exactly the two seed entries.
func seededCache() map[int]*big.Int {
	return map[int]*big.Int{
		0: big.NewInt(0),
		1: big.NewInt(1),
	}
}

// Iterative computes F(n) by advancing a pair of running totals
// (a, b) ← (b, a+b) starting from (0, 1). It runs in O(n) time and O(1)
// auxiliary space (ignoring the growth of the big integers themselves) and is
// the reference strategy the others are validated against.
//
// Parameters:
//   - n: The 0-indexed position in the sequence. Must be non-negative.
//
// Returns:
//   - *big.Int: The nth Fibonacci number.
//   - error: A DomainError if n is negative.
func (g *Generator) Iterative(n int) (*big.Int, error) {
	if n < 0 {
		return nil, errNegativeIndex
	}
	if n <= 1 {
		return big.NewInt(int64(n)), nil
	}
	a := big.NewInt(0)
	b := big.NewInt(1)
	for i := 2; i <= n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return b, nil
}

// Recursive computes F(n) by the naive textbook recursion: F(n) = F(n-1) +
// F(n-2) with base case F(n) = n for n ≤ 1. Correct but O(2^n) time with O(n)
// call-stack depth; sequence assembly refuses indices beyond
// RecursiveSequenceLimit for this reason (see Sequence).
//
// Parameters:
//   - n: The 0-indexed position in the sequence. Must be non-negative.
//
// Returns:
//   - *big.Int: The nth Fibonacci number.
//   - error: A DomainError if n is negative.
func (g *Generator) Recursive(n int) (*big.Int, error) {
	if n < 0 {
		return nil, errNegativeIndex
	}
	return naiveRecurse(n), nil
}

// naiveRecurse is the unguarded recursion body. Validation happens once at
// the Recursive boundary, not on every frame.
func naiveRecurse(n int) *big.Int {
	if n <= 1 {
		return big.NewInt(int64(n))
	}
	return new(big.Int).Add(naiveRecurse(n-1), naiveRecurse(n-2))
}

// Memoized computes F(n) by the recursive definition, answered through the
// generator's cache: every index is consulted before it is computed and
// stored once computed. Repeated queries on one instance are answered in
// O(1); a cold query costs O(n) and grows the cache by up to n entries. The
// cache fill walks upward from the seeds rather than descending one call
// frame per index, so call depth stays constant regardless of n.
//
// The returned value is a copy; mutating it does not corrupt the cache.
//
// Parameters:
//   - n: The 0-indexed position in the sequence. Must be non-negative.
//
// Returns:
//   - *big.Int: The nth Fibonacci number.
//   - error: A DomainError if n is negative.
func (g *Generator) Memoized(n int) (*big.Int, error) {
	if n < 0 {
		return nil, errNegativeIndex
	}
	return new(big.Int).Set(g.memoFill(n)), nil
}

// memoFill returns the cached value for n, computing and caching every
// missing index on the way up. The upward walk keeps call depth constant; a
// one-frame-per-index descent would exhaust the goroutine stack at deep
// indices long before any arithmetic ran. The returned pointer aliases the
// cache entry; callers outside this file must copy it.
func (g *Generator) memoFill(n int) *big.Int {
	if v, ok := g.memo[n]; ok {
		return v
	}
	for i := 2; i <= n; i++ {
		if _, ok := g.memo[i]; ok {
			continue
		}
		g.memo[i] = new(big.Int).Add(g.memo[i-1], g.memo[i-2])
	}
	return g.memo[n]
}

// ClearCache resets the memoization cache to exactly its two seed entries
// {0:0, 1:1}, discarding everything the memoized strategy accumulated.
func (g *Generator) ClearCache() {
	g.memo = seededCache()
}

// CacheLen returns the number of entries currently held in the memoization
// cache, including the two seeds.
//
// Returns:
//   - int: The cache entry count.
func (g *Generator) CacheLen() int {
	return len(g.memo)
}

// CachedValue reports whether index n is present in the cache and, if so,
// returns a copy of its value.
//
// Parameters:
//   - n: The index to look up.
//
// Returns:
//   - *big.Int: A copy of the cached value, or nil if absent.
//   - bool: true if the index was cached.
func (g *Generator) CachedValue(n int) (*big.Int, bool) {
	v, ok := g.memo[n]
	if !ok {
		return nil, false
	}
	return new(big.Int).Set(v), true
}

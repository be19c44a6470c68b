package fibonacci

import (
	"math/big"

	apperrors "github.com/agbru/numcalc/internal/errors"
)

// Stream is a lazy producer of consecutive Fibonacci values, starting at
// F(0) = 0 and advancing by the running-sum recurrence. Elements are computed
// only as consumed, so a bounded stream of a million terms costs nothing
// until traversed and a consumer may stop early at any point.
//
// A Stream is a single-use cursor: it is not restartable. Request a fresh one
// from its factory for every new traversal. Streams share no state with each
// other or with their originating Generator.
type Stream struct {
	a, b      *big.Int
	remaining int
	bounded   bool
}

// Stream creates a bounded lazy sequence that yields at most maxCount values.
//
// Parameters:
//   - maxCount: The maximum number of values to produce. Must be non-negative.
//
// Returns:
//   - *Stream: A fresh suspended sequence positioned before F(0).
//   - error: A DomainError if maxCount is negative.
func (g *Generator) Stream(maxCount int) (*Stream, error) {
	if maxCount < 0 {
		return nil, apperrors.NewDomainError("Maximum count cannot be negative")
	}
	return &Stream{
		a:         big.NewInt(0),
		b:         big.NewInt(1),
		remaining: maxCount,
		bounded:   true,
	}, nil
}

// StreamAll creates an unbounded lazy sequence. The consumer decides when to
// stop; Next never reports exhaustion.
//
// Returns:
//   - *Stream: A fresh suspended sequence positioned before F(0).
func (g *Generator) StreamAll() *Stream {
	return &Stream{
		a: big.NewInt(0),
		b: big.NewInt(1),
	}
}

// Next yields the next Fibonacci value and advances the cursor.
//
// Returns:
//   - *big.Int: The next value (a copy the caller may freely mutate), or nil
//     once a bounded stream is exhausted.
//   - bool: false once a bounded stream has produced its maximum count.
func (s *Stream) Next() (*big.Int, bool) {
	if s.bounded {
		if s.remaining == 0 {
			return nil, false
		}
		s.remaining--
	}
	v := new(big.Int).Set(s.a)
	s.a.Add(s.a, s.b)
	s.a, s.b = s.b, s.a
	return v, true
}

// Collect drains a bounded stream into a slice.
//
// Returns:
//   - []*big.Int: The remaining values of the stream, in order.
//   - error: A DomainError if the stream is unbounded; draining one would
//     never terminate.
func (s *Stream) Collect() ([]*big.Int, error) {
	if !s.bounded {
		return nil, apperrors.NewDomainError("Cannot collect an unbounded stream")
	}
	out := make([]*big.Int, 0, s.remaining)
	for {
		v, ok := s.Next()
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

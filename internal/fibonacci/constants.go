package fibonacci

const (
	// RecursiveSequenceLimit is the highest index the naive recursive strategy
	// will accept when assembling a sequence. Beyond it, the O(2^n) cost makes
	// the computation effectively unbounded, so sequence assembly refuses the
	// request and advises a faster method instead of running away.
	//
	// The value is a policy choice carried over from the original tool and
	// asserted on by the test suite; treat it as a tunable constant.
	RecursiveSequenceLimit = 35
)

package fibonacci_test

import (
	"fmt"

	"github.com/agbru/numcalc/internal/fibonacci"
)

// ExampleGenerator_Iterative demonstrates computing a single Fibonacci number
// with the reference strategy.
func ExampleGenerator_Iterative() {
	g := fibonacci.NewGenerator()
	v, err := g.Iterative(10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v)
	// Output: 55
}

// ExampleGenerator_SequenceByName demonstrates assembling a sequence with a
// method chosen by name at the boundary.
func ExampleGenerator_SequenceByName() {
	g := fibonacci.NewGenerator()
	seq, err := g.SequenceByName(8, "memoized")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range seq {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 0 1 1 2 3 5 8 13
}

// ExampleGenerator_Stream demonstrates lazy production: only the consumed
// prefix is ever computed.
func ExampleGenerator_Stream() {
	g := fibonacci.NewGenerator()
	stream := g.StreamAll()
	for i := 0; i < 5; i++ {
		v, _ := stream.Next()
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 0 1 1 2 3
}

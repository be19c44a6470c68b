package fibonacci

import (
	"strings"

	apperrors "github.com/agbru/numcalc/internal/errors"
)

// Method is the enumerated selector for a calculation strategy. The boundary
// resolves user-supplied names case-insensitively via ParseMethod; internally
// all dispatch is on this tagged value, never on strings.
type Method int

const (
	// MethodIterative advances a running pair of totals. O(n) time, O(1)
	// space. This is the reference strategy all others must agree with.
	MethodIterative Method = iota
	// MethodRecursive is the naive textbook recursion. O(2^n) time.
	MethodRecursive
	// MethodMemoized is the recursive definition backed by the owning
	// generator's cache. O(n) amortized.
	MethodMemoized
	// MethodGenerator produces values lazily through a Stream.
	MethodGenerator
)

// DefaultMethod is the strategy used when the caller does not name one.
const DefaultMethod = MethodIterative

// methodNames maps each Method to its canonical lower-case name.
var methodNames = map[Method]string{
	MethodIterative: "iterative",
	MethodRecursive: "recursive",
	MethodMemoized:  "memoized",
	MethodGenerator: "generator",
}

// String returns the canonical name of the method.
//
// Returns:
//   - string: The lower-case method name, or "unknown" for an invalid value.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "unknown"
}

// MethodNames returns the canonical names of all methods, in declaration order.
//
// Returns:
//   - []string: The method names.
func MethodNames() []string {
	return []string{
		MethodIterative.String(),
		MethodRecursive.String(),
		MethodMemoized.String(),
		MethodGenerator.String(),
	}
}

// AllMethods returns every Method, in declaration order.
//
// Returns:
//   - []Method: All enumerated methods.
func AllMethods() []Method {
	return []Method{MethodIterative, MethodRecursive, MethodMemoized, MethodGenerator}
}

// ParseMethod resolves a user-supplied method name to its enumerated selector.
// Resolution is case-insensitive. An unrecognized name is a domain error that
// lists the valid choices.
//
// Parameters:
//   - name: The method name to resolve (e.g. "Iterative", "MEMOIZED").
//
// Returns:
//   - Method: The resolved selector.
//   - error: A DomainError if the name is not recognized.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "iterative":
		return MethodIterative, nil
	case "recursive":
		return MethodRecursive, nil
	case "memoized":
		return MethodMemoized, nil
	case "generator":
		return MethodGenerator, nil
	default:
		return 0, apperrors.NewDomainError(
			"Invalid method '%s'. Use 'iterative', 'recursive', 'memoized', or 'generator'", name)
	}
}

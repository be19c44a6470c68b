// Package apperrors defines the error taxonomy shared by every component of
// the numcalc application: domain errors (semantically invalid input),
// resource exhaustion (recursion depth exceeded), configuration errors, and
// the exit codes the CLI maps them to.
package apperrors

// Package tin implements the shared framework for validating and normalizing
// national tax identification numbers.
//
// Every jurisdiction exposes the same three operations so callers can treat
// heterogeneous identifier formats polymorphically:
//   - Compact: strip separators and reduce the input to its canonical form
//   - Format: render a canonical value with display separators
//   - Validate: run the full structural and checksum pipeline
//
// The package holds the generic building blocks those operations compose:
// the string normalizer (Clean), the pattern formatter (Template), and the
// checksum primitives (Luhn, WeightedSum). Jurisdiction packages under
// pkg/tin/<code> supply the per-country structural rules.
//
// Everything here is pure computation over immutable strings. No state is
// shared across calls, so validators are safe for concurrent use without
// coordination.
package tin

// Result is the tagged outcome of Validator.Validate.
//
// Invariants:
//   - Err is nil if and only if Valid is true
//   - for a valid result exactly one of Individual and Company is true
//   - Compact is populated only on success
type Result struct {
	Valid      bool
	Compact    string
	Individual bool
	Company    bool
	Err        error
}

// Invalid builds a failed Result carrying the error kind.
func Invalid(err error) Result {
	return Result{Err: err}
}

// ValidIndividual builds a successful Result classified as a natural person.
func ValidIndividual(compact string) Result {
	return Result{Valid: true, Compact: compact, Individual: true}
}

// ValidCompany builds a successful Result classified as a legal entity.
func ValidCompany(compact string) Result {
	return Result{Valid: true, Compact: compact, Company: true}
}

// Validator is the uniform per-jurisdiction contract.
//
// Compact and Format declare a narrower precondition than Validate: they
// assume a well-formed candidate and return the normalizer's error when the
// input contains characters outside the jurisdiction's alphabet. Validate
// never fails with an error value of its own; malformed input is an expected
// outcome and is reported inside the Result.
type Validator interface {
	Compact(input string) (string, error)
	Format(input string) (string, error)
	Validate(input string) Result
}

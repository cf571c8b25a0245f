// Package registry maps jurisdiction codes to their validators.
//
// The registry replaces dynamic dispatch: each jurisdiction is an independent
// implementation of the tin.Validator contract, enumerated statically at
// construction time. Lookups never mutate the registry, so a built registry
// is safe for concurrent use.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"tincheck/pkg/tin"
	"tincheck/pkg/tin/ad"
	"tincheck/pkg/tin/es"
	"tincheck/pkg/tin/za"
)

// Registry holds the known jurisdictions keyed by lowercase ISO 3166-1
// alpha-2 code.
type Registry struct {
	validators map[string]tin.Validator
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{validators: make(map[string]tin.Validator)}
}

// Default returns a registry with every bundled jurisdiction registered.
func Default() *Registry {
	r := New()
	// Bundled jurisdictions; Register only fails on duplicates.
	for code, v := range map[string]tin.Validator{
		"ad": ad.New(),
		"es": es.New(),
		"za": za.New(),
	} {
		if err := r.Register(code, v); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a validator under a jurisdiction code. Codes are normalized
// to lowercase; registering the same code twice is an error.
func (r *Registry) Register(code string, v tin.Validator) error {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return fmt.Errorf("jurisdiction code must not be empty")
	}
	if _, exists := r.validators[code]; exists {
		return fmt.Errorf("jurisdiction %s already registered", code)
	}
	r.validators[code] = v
	return nil
}

// Get retrieves the validator for a jurisdiction code.
func (r *Registry) Get(code string) (tin.Validator, bool) {
	v, ok := r.validators[strings.ToLower(code)]
	return v, ok
}

// Codes returns the registered jurisdiction codes in sorted order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.validators))
	for code := range r.validators {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Package za validates South African tax reference numbers.
//
// Two forms are accepted. The modern form is 11 digits whose last digit is a
// Luhn check digit; the leading digit identifies the taxpayer class (0-3 for
// individuals, 9 for companies and trusts). The legacy form is 7 digits whose
// trailing digit is a weighted mod-11 check over the first six.
//
// Legacy numbers circulate zero-padded to the modern width, so compacting
// strips a leading "0000" run and formatting always renders the 11-digit
// canonical display form.
package za

import (
	"strconv"
	"strings"

	"tincheck/pkg/tin"
)

const (
	modernLength = 11
	legacyLength = 7
)

var (
	displayTemplate = tin.NewTemplate("#### ### ####")

	// Check weights for the first six digits of a legacy number.
	legacyWeights = []int{8, 7, 6, 5, 4, 3}
)

// Validator implements tin.Validator for South Africa.
type Validator struct{}

// New returns the South African validator.
func New() Validator {
	return Validator{}
}

// Compact strips separators and the legacy zero-padding prefix.
func (Validator) Compact(input string) (string, error) {
	v, err := tin.Clean(input, " -./", tin.Digits)
	if err != nil {
		return "", err
	}
	if len(v) == modernLength && strings.HasPrefix(v, "0000") {
		v = v[len("0000"):]
	}
	return v, nil
}

// Format renders the 11-digit canonical display form. Legacy 7-digit numbers
// are left-padded back to the full width.
func (v Validator) Format(input string) (string, error) {
	c, err := v.Compact(input)
	if err != nil {
		return "", err
	}
	return displayTemplate.Render(c), nil
}

// Validate runs the full pipeline: normalize, length-variant dispatch,
// component check, checksum, classification. The first failing stage
// short-circuits.
func (v Validator) Validate(input string) tin.Result {
	c, err := v.Compact(input)
	if err != nil {
		return tin.Invalid(err)
	}
	switch len(c) {
	case modernLength:
		return validateModern(c)
	case legacyLength:
		return validateLegacy(c)
	default:
		return tin.Invalid(tin.ErrInvalidLength)
	}
}

func validateModern(c string) tin.Result {
	individual := c[0] >= '0' && c[0] <= '3'
	company := c[0] == '9'
	if !individual && !company {
		return tin.Invalid(tin.ErrInvalidComponent)
	}
	if !tin.Luhn(c) {
		return tin.Invalid(tin.ErrInvalidChecksum)
	}
	if company {
		return tin.ValidCompany(c)
	}
	return tin.ValidIndividual(c)
}

func validateLegacy(c string) tin.Result {
	// The remainder is compared as a decimal string without padding; a
	// two-digit remainder against the one-digit check field is a mismatch.
	sum := tin.WeightedSum(c[:legacyLength-1], legacyWeights, 11)
	if strconv.Itoa(sum) != c[legacyLength-1:] {
		return tin.Invalid(tin.ErrInvalidChecksum)
	}
	// Legacy numbers were only ever issued to natural persons.
	return tin.ValidIndividual(c)
}

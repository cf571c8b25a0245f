// Package ad validates Andorran NRT numbers (Número de Registre Tributari).
//
// An NRT is a letter, six digits and a trailing letter, displayed as
// U-132950-X. There is no checksum; validity rests on the leading letter and
// numeric range rules:
//   - the leading letter must be one of A C D E F G L O P U
//   - F numbers must not exceed 699999
//   - A and L numbers must lie strictly between 699999 and 800000
//
// E and F numbers belong to natural persons; the rest to legal entities.
package ad

import (
	"strings"

	"tincheck/pkg/tin"
)

const nrtLength = 8

var displayTemplate = tin.NewTemplate("#-######-#")

// Validator implements tin.Validator for Andorra.
type Validator struct{}

// New returns the Andorran validator.
func New() Validator {
	return Validator{}
}

// Compact strips separators and uppercases.
func (Validator) Compact(input string) (string, error) {
	return tin.Clean(input, " -.", tin.Alphanumeric)
}

// Format renders the hyphenated display form.
func (v Validator) Format(input string) (string, error) {
	c, err := v.Compact(input)
	if err != nil {
		return "", err
	}
	return displayTemplate.Render(c), nil
}

// Validate checks length, character classes and the numeric range rules.
func (v Validator) Validate(input string) tin.Result {
	c, err := v.Compact(input)
	if err != nil {
		return tin.Invalid(err)
	}
	if len(c) != nrtLength {
		return tin.Invalid(tin.ErrInvalidLength)
	}
	first, last := rune(c[0]), rune(c[len(c)-1])
	if !tin.Letters(first) || !tin.Letters(last) {
		return tin.Invalid(tin.ErrInvalidFormat)
	}
	number := c[1 : len(c)-1]
	for _, r := range number {
		if !tin.Digits(r) {
			return tin.Invalid(tin.ErrInvalidFormat)
		}
	}
	if !strings.ContainsRune("ACDEFGLOPU", first) {
		return tin.Invalid(tin.ErrInvalidComponent)
	}
	// Range rules are string comparisons over the fixed-width digit block.
	if first == 'F' && number > "699999" {
		return tin.Invalid(tin.ErrInvalidComponent)
	}
	if (first == 'A' || first == 'L') && !(number > "699999" && number < "800000") {
		return tin.Invalid(tin.ErrInvalidComponent)
	}
	if first == 'E' || first == 'F' {
		return tin.ValidIndividual(c)
	}
	return tin.ValidCompany(c)
}

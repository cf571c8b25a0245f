// Package es validates Spanish NIF numbers (Número de Identificación Fiscal).
//
// Three sub-formats share the nine-character frame:
//   - DNI: eight digits plus a control letter from the mod-23 table
//   - NIE: X, Y or Z, seven digits and a control letter; the leading letter
//     maps to 0, 1 or 2 before the mod-23 computation
//   - CIF: an organization letter, seven digits and a check character derived
//     from a Luhn-style doubled-digit sum
//
// DNI and NIE identify natural persons, CIF identifies legal entities.
package es

import (
	"strings"

	"tincheck/pkg/tin"
)

const nifLength = 9

const (
	// Control letter table for DNI and NIE: letter = table[number mod 23].
	controlLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

	// CIF check characters when the control is alphabetic.
	cifCheckLetters = "JABCDEFGHI"

	// Organization type letters that open a CIF.
	cifLeading = "ABCDEFGHJNPQRSUVW"
)

var (
	// DNI and NIE hyphenate before the control letter; CIF hyphenates the
	// organization letter off as well.
	personalTemplate = tin.NewTemplate("########-#")
	cifTemplate      = tin.NewTemplate("#-#######-#")
)

// Validator implements tin.Validator for Spain.
type Validator struct{}

// New returns the Spanish validator.
func New() Validator {
	return Validator{}
}

// Compact strips separators and uppercases.
func (Validator) Compact(input string) (string, error) {
	return tin.Clean(input, " -.", tin.Alphanumeric)
}

// Format renders the display form. A leading organization letter selects the
// CIF rendering; everything else uses the DNI/NIE shape.
func (v Validator) Format(input string) (string, error) {
	c, err := v.Compact(input)
	if err != nil {
		return "", err
	}
	if len(c) > 0 && strings.ContainsRune(cifLeading, rune(c[0])) {
		return cifTemplate.Render(c), nil
	}
	return personalTemplate.Render(c), nil
}

// Validate dispatches on the leading character: digits open a DNI, X/Y/Z a
// NIE, and an organization letter a CIF.
func (v Validator) Validate(input string) tin.Result {
	c, err := v.Compact(input)
	if err != nil {
		return tin.Invalid(err)
	}
	if len(c) != nifLength {
		return tin.Invalid(tin.ErrInvalidLength)
	}
	switch {
	case tin.Digits(rune(c[0])):
		return validatePersonal(c, c)
	case c[0] == 'X' || c[0] == 'Y' || c[0] == 'Z':
		// The NIE prefix stands in for the first digit of the number.
		digits := string('0'+c[0]-'X') + c[1:]
		return validatePersonal(c, digits)
	case strings.ContainsRune(cifLeading, rune(c[0])):
		return validateCIF(c)
	default:
		return tin.Invalid(tin.ErrInvalidComponent)
	}
}

// validatePersonal checks a DNI or NIE. digits is the nine-character value
// with any NIE prefix already replaced by its digit.
func validatePersonal(compact, digits string) tin.Result {
	number := digits[:nifLength-1]
	for _, r := range number {
		if !tin.Digits(r) {
			return tin.Invalid(tin.ErrInvalidFormat)
		}
	}
	control := rune(compact[nifLength-1])
	if !tin.Letters(control) {
		return tin.Invalid(tin.ErrInvalidFormat)
	}
	n := 0
	for _, r := range number {
		n = n*10 + int(r-'0')
	}
	if control != rune(controlLetters[n%23]) {
		return tin.Invalid(tin.ErrInvalidChecksum)
	}
	return tin.ValidIndividual(compact)
}

func validateCIF(c string) tin.Result {
	number := c[1 : nifLength-1]
	for _, r := range number {
		if !tin.Digits(r) {
			return tin.Invalid(tin.ErrInvalidFormat)
		}
	}
	// Doubled-digit sum over the seven digits: odd positions (1-indexed) are
	// doubled with digit reduction, even positions are added as-is.
	sum := 0
	for i, r := range number {
		d := int(r - '0')
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	check := (10 - sum%10) % 10
	control := c[nifLength-1]
	// Both the digit and letter renderings of the check are accepted; which
	// one is issued depends on the organization type.
	if control != byte('0'+check) && control != cifCheckLetters[check] {
		return tin.Invalid(tin.ErrInvalidChecksum)
	}
	return tin.ValidCompany(c)
}

package tin

import (
	"fmt"
	"strings"
)

// Alphabet reports whether a rune belongs to a jurisdiction's declared
// character set. Cleaning uppercases before the check, so alphabets only
// need to accept upper case letters.
type Alphabet func(rune) bool

var (
	// Digits accepts ASCII decimal digits.
	Digits Alphabet = func(r rune) bool { return r >= '0' && r <= '9' }

	// Letters accepts upper case ASCII letters.
	Letters Alphabet = func(r rune) bool { return r >= 'A' && r <= 'Z' }

	// Alphanumeric accepts digits and upper case ASCII letters.
	Alphanumeric Alphabet = func(r rune) bool { return Digits(r) || Letters(r) }
)

// Clean normalizes a raw identifier: every rune present in separators is
// removed, the remainder is uppercased, and each surviving rune is checked
// against the alphabet. Returns ErrInvalidFormat (wrapped with the offending
// rune) when a character falls outside the alphabet.
//
// Clean is a pure function; it never mutates its inputs and holds no state.
func Clean(value, separators string, alphabet Alphabet) (string, error) {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range strings.ToUpper(value) {
		if strings.ContainsRune(separators, r) {
			continue
		}
		if !alphabet(r) {
			return "", fmt.Errorf("%w: unexpected character %q", ErrInvalidFormat, r)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

package tin

// Luhn reports whether a digit string passes the Luhn mod-10 check.
//
// Digits are processed right to left; every second digit starting with the
// one next to the check position is doubled, doubles above 9 have 9
// subtracted, and the string is valid iff the total is divisible by 10.
// Any non-digit rune makes the result false; the function never panics.
func Luhn(digits string) bool {
	if digits == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// WeightedSum multiplies the digit at position i by weights[i], sums the
// products and reduces modulo modulus. Weight tables and moduli stay plain
// data so every jurisdiction shares this one summation loop.
//
// Returns -1 when the input contains a non-digit, the weight table is
// shorter than the input, or the modulus is not positive. -1 can never match
// a rendered check field, so the caller's string comparison fails naturally
// without a separate error path.
//
// Callers compare the decimal rendering of the result against the check
// substring of the identifier with plain string equality. No zero padding is
// applied: a multi-digit remainder against a single-character check field is
// a defined mismatch, not an error.
func WeightedSum(digits string, weights []int, modulus int) int {
	if modulus <= 0 || len(weights) < len(digits) {
		return -1
	}
	sum := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return -1
		}
		sum += int(c-'0') * weights[i]
	}
	return sum % modulus
}
